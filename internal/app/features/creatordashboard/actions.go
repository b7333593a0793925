package creatordashboard

import (
	"net/http"

	"github.com/dalemusser/creatorhub/internal/app/system/creatorview"
	"github.com/dalemusser/creatorhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// mutate applies set to the session state and saves it. Only HTMX requests
// fetch the creator's data, to re-render the body; the rest are redirected
// back to the dashboard. An error from set is a bad request.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, what string, set func(vm *creatorview.ViewModel) error) {
	vm := creatorview.New(nil, nil, models.DashboardStats{}, h.State.Load(r))

	if err := set(vm); err != nil {
		if r.Header.Get("HX-Request") == "true" {
			h.ErrLog.HTMXLogBadRequest(w, r, "creator dashboard: invalid "+what, err, "That option is not available.")
			return
		}
		h.ErrLog.LogBadRequest(w, r, "creator dashboard: invalid "+what, err, "That option is not available.", BasePath)
		return
	}

	if err := h.State.Save(w, r, vm.State); err != nil {
		// The change still applies to this render; it just won't stick.
		h.Log.Warn("creator dashboard: save state failed", zap.String("change", what), zap.Error(err))
	}

	if r.Header.Get("HX-Request") == "true" {
		full, _ := h.load(r, vm.State)
		h.render(w, r, full)
		return
	}
	http.Redirect(w, r, BasePath, http.StatusSeeOther)
}

// Sort handles POST /sort/{key}.
func (h *Handler) Sort(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "sort key", func(vm *creatorview.ViewModel) error {
		key, err := creatorview.ParseSortKey(chi.URLParam(r, "key"))
		if err != nil {
			return err
		}
		return vm.SetExplorationsSortingOptions(key)
	})
}

// SetTab handles POST /tab/{tab}.
func (h *Handler) SetTab(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "tab", func(vm *creatorview.ViewModel) error {
		return vm.SetActiveTab(creatorview.Tab(chi.URLParam(r, "tab")))
	})
}

// SetView handles POST /view/{mode}.
func (h *Handler) SetView(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "view mode", func(vm *creatorview.ViewModel) error {
		return vm.SetMyExplorationsView(creatorview.ViewMode(chi.URLParam(r, "mode")))
	})
}

// EditExploration handles GET /explorations/{id}/edit.
func (h *Handler) EditExploration(w http.ResponseWriter, r *http.Request) {
	h.openEditor(w, r, EditorExploration)
}

// EditCollection handles GET /collections/{id}/edit.
func (h *Handler) EditCollection(w http.ResponseWriter, r *http.Request) {
	h.openEditor(w, r, EditorCollection)
}

// openEditor sends the browser to the item's editor. Access control on the
// item itself belongs to the editor.
func (h *Handler) openEditor(w http.ResponseWriter, r *http.Request, kind EditorKind) {
	id := chi.URLParam(r, "id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		h.ErrLog.LogBadRequest(w, r, "creator dashboard: bad "+string(kind)+" id", err, "That item could not be found.", BasePath)
		return
	}

	dest := h.Editors.EditorURL(kind, id)
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
