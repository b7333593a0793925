package creatordashboard

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/creatorhub/internal/app/system/authz"
	"github.com/dalemusser/creatorhub/internal/app/system/creatorview"
	"github.com/dalemusser/creatorhub/internal/app/system/dashdata"
	"github.com/dalemusser/creatorhub/internal/app/system/timeouts"
	"github.com/dalemusser/creatorhub/internal/app/system/viewdata"
	"github.com/dalemusser/creatorhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// tzCookie is set by the page script to the browser's IANA zone.
const tzCookie = "tz"

// load fetches the signed-in creator's data and wraps it in a view-model
// carrying state. A failed fetch is logged and shows as an empty dashboard;
// degraded reports that case.
func (h *Handler) load(r *http.Request, state creatorview.State) (vm *creatorview.ViewModel, degraded bool) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		h.Log.Warn("creator dashboard: no usable user id in session")
		return creatorview.New(nil, nil, creatorview.ComputeStats(nil, nil), state), true
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "creator dashboard fetch")
	defer cancel()

	res, err := h.Data.Fetch(ctx, uid)
	if err != nil {
		h.Log.Warn("creator dashboard: data fetch failed",
			zap.String("user_id", uid.Hex()),
			zap.Error(err))
		res = dashdata.Result{Stats: creatorview.ComputeStats(nil, nil)}
		degraded = true
	}
	return creatorview.New(res.Explorations, res.Collections, res.Stats, state), degraded
}

func (h *Handler) renderOptions(r *http.Request) creatorview.RenderOptions {
	tz := query.Get(r, "tz")
	if tz == "" {
		if c, err := r.Cookie(tzCookie); err == nil {
			tz = c.Value
		}
	}
	return creatorview.RenderOptions{
		Locale:   creatorview.ParseLocale(r.Header.Get("Accept-Language"), tz, h.DefaultTZ),
		Now:      h.Now(),
		BasePath: BasePath,
		Filter:   strings.TrimSpace(query.Get(r, "q")),
	}
}

func (h *Handler) buildData(r *http.Request, vm *creatorview.ViewModel) dashboardData {
	opts := h.renderOptions(r)

	data := dashboardData{
		BaseVM:           viewdata.NewBaseVM(r, "Creator Dashboard", "/"),
		BasePath:         BasePath,
		Empty:            vm.IsEmpty(),
		ActiveTab:        string(vm.ActiveTab),
		ShowExplorations: vm.ActiveTab == creatorview.TabMyExplorations,
		ShowCollections:  vm.ActiveTab == creatorview.TabMyCollections,
		CardView:         vm.MyExplorationsView == creatorview.ViewCard,
		SortLabel:        vm.CurrentSortType.Label(),
		SortDescending:   vm.IsCurrentSortDescending,
		Filter:           opts.Filter,
		Stats:            vm.StatCards(opts),
		ExplorationCount: len(vm.Explorations),
		CollectionCount:  len(vm.Collections),
	}
	if data.Empty {
		return data
	}

	data.Headers = vm.SortHeaders(opts)
	data.Explorations = vm.ExplorationRows(opts)
	data.Collections = vm.CollectionCards(opts)
	data.NoMatches = len(vm.Explorations) > 0 && len(data.Explorations) == 0
	return data
}

// render writes the body snippet for HTMX requests and the full page
// otherwise.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, vm *creatorview.ViewModel) {
	data := h.buildData(r, vm)
	if r.Header.Get("HX-Request") == "true" {
		h.Render.Snippet(w, "creator_dashboard_body", data)
		return
	}
	h.Render.Page(w, r, "creator_dashboard", data)
}

// ServeDashboard handles GET /creator-dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	vm, _ := h.load(r, h.State.Load(r))
	h.render(w, r, vm)
}

// ServeData handles GET /creator-dashboard/data: the loaded lists, the
// aggregate stats and the current UI state as JSON.
func (h *Handler) ServeData(w http.ResponseWriter, r *http.Request) {
	vm, degraded := h.load(r, h.State.Load(r))

	resp := dataResponse{
		Explorations: vm.SortedExplorations(),
		Collections:  vm.Collections,
		Stats:        vm.Stats,
		State:        toStateJSON(vm.State),
		Degraded:     degraded,
	}
	if resp.Explorations == nil {
		resp.Explorations = []models.Exploration{}
	}
	if resp.Collections == nil {
		resp.Collections = []models.Collection{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("creator dashboard: encode data failed", zap.Error(err))
	}
}
