package createactivity

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the creation endpoints (under /create). Both are open to
// visitors: the modal shows a sign-in link when nobody is signed in.
// loginLimits wrap only the login redirect, which records an analytics
// event per hit.
func Routes(h *Handler, loginLimits ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/modal", h.ServeModal)
	r.With(loginLimits...).Get("/login", h.RedirectToLogin)
	return r
}
