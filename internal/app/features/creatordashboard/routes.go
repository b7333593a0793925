package creatordashboard

import (
	"github.com/dalemusser/creatorhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the dashboard under BasePath. Every route needs a signed-in
// creator.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeDashboard)
	r.Get("/data", h.ServeData)

	r.Post("/sort/{key}", h.Sort)
	r.Post("/tab/{tab}", h.SetTab)
	r.Post("/view/{mode}", h.SetView)

	r.Get("/explorations/{id}/edit", h.EditExploration)
	r.Get("/collections/{id}/edit", h.EditCollection)
	return r
}
