// Package creatorview holds the creator dashboard's view-model: the
// loaded explorations and collections, the UI state that controls how
// they are shown, and the pure functions that sort, format and summarize
// them. Handlers mutate state only through the explicit setters and then
// re-render.
package creatorview

import (
	"fmt"

	"github.com/dalemusser/creatorhub/internal/domain/models"
)

// Tab selects which list the dashboard shows.
type Tab string

const (
	TabMyExplorations Tab = "myExplorations"
	TabMyCollections  Tab = "myCollections"
)

// ViewMode selects how the exploration list is laid out.
type ViewMode string

const (
	ViewCard ViewMode = "card"
	ViewList ViewMode = "list"
)

// ParseTab validates a tab name.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TabMyExplorations, TabMyCollections:
		return t, nil
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// ParseViewMode validates a view mode name.
func ParseViewMode(s string) (ViewMode, error) {
	switch v := ViewMode(s); v {
	case ViewCard, ViewList:
		return v, nil
	}
	return "", fmt.Errorf("unknown view mode %q", s)
}

// State is the part of the view-model that survives between requests.
// It lives in the user's session only.
type State struct {
	ActiveTab               Tab
	MyExplorationsView      ViewMode
	CurrentSortType         SortKey
	IsCurrentSortDescending bool
}

// DefaultState is what a new session starts with: the explorations tab in
// card view, most recently updated first.
func DefaultState() State {
	return State{
		ActiveTab:               TabMyExplorations,
		MyExplorationsView:      ViewCard,
		CurrentSortType:         SortByLastUpdated,
		IsCurrentSortDescending: DefaultDescending(SortByLastUpdated),
	}
}

// Normalize replaces invalid fields (for example from an old cookie) with
// their defaults.
func (s State) Normalize() State {
	def := DefaultState()
	if _, err := ParseTab(string(s.ActiveTab)); err != nil {
		s.ActiveTab = def.ActiveTab
	}
	if _, err := ParseViewMode(string(s.MyExplorationsView)); err != nil {
		s.MyExplorationsView = def.MyExplorationsView
	}
	if _, err := ParseSortKey(string(s.CurrentSortType)); err != nil {
		s.CurrentSortType = def.CurrentSortType
		s.IsCurrentSortDescending = def.IsCurrentSortDescending
	}
	return s
}

// ViewModel is the dashboard's complete presentation state.
type ViewModel struct {
	// Explorations and Collections are kept in fetch order; sorting always
	// starts from this order so ties resolve the same way on every render.
	Explorations []models.Exploration
	Collections  []models.Collection
	Stats        models.DashboardStats

	State
}

// New builds a view-model over freshly loaded data.
func New(explorations []models.Exploration, collections []models.Collection, stats models.DashboardStats, state State) *ViewModel {
	return &ViewModel{
		Explorations: explorations,
		Collections:  collections,
		Stats:        stats,
		State:        state.Normalize(),
	}
}

// SetActiveTab switches between the explorations and collections lists.
func (vm *ViewModel) SetActiveTab(tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	vm.ActiveTab = tab
	return nil
}

// SetMyExplorationsView switches between card and list layouts.
func (vm *ViewModel) SetMyExplorationsView(mode ViewMode) error {
	if _, err := ParseViewMode(string(mode)); err != nil {
		return err
	}
	vm.MyExplorationsView = mode
	return nil
}

// SetExplorationsSortingOptions handles a click on a sort header. Clicking
// the active key flips the direction; clicking a new key selects it in
// its default direction.
func (vm *ViewModel) SetExplorationsSortingOptions(key SortKey) error {
	if _, err := ParseSortKey(string(key)); err != nil {
		return err
	}
	if key == vm.CurrentSortType {
		vm.IsCurrentSortDescending = !vm.IsCurrentSortDescending
		return nil
	}
	vm.CurrentSortType = key
	vm.IsCurrentSortDescending = DefaultDescending(key)
	return nil
}

// SortedExplorations returns the explorations in display order.
func (vm *ViewModel) SortedExplorations() []models.Exploration {
	return SortExplorations(vm.Explorations, vm.CurrentSortType, vm.IsCurrentSortDescending)
}

// IsEmpty reports whether the creator has nothing to show yet.
func (vm *ViewModel) IsEmpty() bool {
	return len(vm.Explorations) == 0 && len(vm.Collections) == 0
}
