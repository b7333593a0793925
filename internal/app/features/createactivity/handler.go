package createactivity

import (
	"net/http"

	uierrors "github.com/dalemusser/creatorhub/internal/app/features/errors"
	"github.com/dalemusser/creatorhub/internal/app/system/analytics"
	"github.com/dalemusser/creatorhub/internal/app/system/authz"
	"github.com/dalemusser/creatorhub/internal/app/system/navigation"
	"github.com/dalemusser/creatorhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// LoginURLBuilder turns a post-login return path into the sign-in URL.
// *auth.SessionManager satisfies it.
type LoginURLBuilder interface {
	LoginURLWithReturn(ret string) string
}

// Handler serves the /create endpoints.
type Handler struct {
	Trigger *Trigger
	Login   LoginURLBuilder
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs a createactivity Handler.
func NewHandler(trigger *Trigger, login LoginURLBuilder, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Trigger: trigger,
		Login:   login,
		ErrLog:  errLog,
		Log:     logger,
	}
}

type modalData struct {
	viewdata.BaseVM
	Modal     Modal
	SignInURL string
}

// ServeModal handles GET /create/modal?variant=create|upload.
// HTMX requests get the modal snippet; others get a full page.
func (h *Handler) ServeModal(w http.ResponseWriter, r *http.Request) {
	var (
		modal Modal
		err   error
	)
	switch Variant(query.Get(r, "variant")) {
	case VariantCreate, "":
		modal, err = h.Trigger.OpenCreateModal(r.Context())
	case VariantUpload:
		modal, err = h.Trigger.OpenUploadModal(r.Context())
	default:
		h.ErrLog.LogBadRequest(w, r, "unknown modal variant", nil, "Unknown creation option.", "/creator-dashboard")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "open creation modal failed", err, "Unable to open the creation dialog.", "/creator-dashboard")
		return
	}

	data := modalData{
		BaseVM:    viewdata.NewBaseVM(r, modal.Title, "/creator-dashboard"),
		Modal:     modal,
		SignInURL: "/create/login?return=" + httpPathEscape(r.Header.Get("HX-Current-URL"), "/creator-dashboard"),
	}

	if r.Header.Get("HX-Request") == "true" {
		templates.RenderSnippet(w, "create_modal", data)
		return
	}
	templates.Render(w, r, "create_modal_page", data)
}

// RedirectToLogin handles GET /create/login?return=<path>.
// It runs the trigger with a per-request navigator and answers once the
// delayed navigation fires.
func (h *Handler) RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	ret := navigation.SafeBackURL(r, navigation.LoginReturn)
	dest := h.Login.LoginURLWithReturn(ret)

	nav := newRequestNavigator()
	ctx := analytics.WithClient(r.Context(), analytics.ClientFromRequest(r, authz.UserIDPtr(r)))
	h.Trigger.WithNavigator(nav).OnRedirectToLogin(ctx, dest)

	select {
	case target := <-nav.ch:
		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", target)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	case <-r.Context().Done():
		h.Log.Debug("client left before login redirect", zap.String("dest", dest))
	}
}

// requestNavigator hands the navigation target back to the waiting handler.
// Navigations after the handler has returned are dropped.
type requestNavigator struct {
	ch chan string
}

func newRequestNavigator() *requestNavigator {
	return &requestNavigator{ch: make(chan string, 1)}
}

func (n *requestNavigator) Navigate(url string) {
	select {
	case n.ch <- url:
	default:
	}
}
