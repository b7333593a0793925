package creatordashboard

import (
	"github.com/dalemusser/creatorhub/internal/app/system/creatorview"
	"github.com/dalemusser/creatorhub/internal/app/system/viewdata"
	"github.com/dalemusser/creatorhub/internal/domain/models"
)

// dashboardData is the view model for creator_dashboard and its body
// snippet.
type dashboardData struct {
	viewdata.BaseVM

	BasePath string

	// Empty is true when the creator has no explorations and no
	// collections, including when loading failed.
	Empty bool

	ActiveTab        string
	ShowExplorations bool
	ShowCollections  bool
	CardView         bool
	SortLabel        string
	SortDescending   bool
	Filter           string
	NoMatches        bool

	Stats        []creatorview.StatCard
	Headers      []creatorview.SortHeader
	Explorations []creatorview.ExplorationRow
	Collections  []creatorview.CollectionCard

	ExplorationCount int
	CollectionCount  int
}

// dataResponse is the JSON shape of GET /creator-dashboard/data.
type dataResponse struct {
	Explorations []models.Exploration  `json:"explorations"`
	Collections  []models.Collection   `json:"collections"`
	Stats        models.DashboardStats `json:"stats"`
	State        stateJSON             `json:"state"`
	Degraded     bool                  `json:"degraded,omitempty"`
}

type stateJSON struct {
	ActiveTab               string `json:"active_tab"`
	MyExplorationsView      string `json:"my_explorations_view"`
	CurrentSortType         string `json:"current_sort_type"`
	IsCurrentSortDescending bool   `json:"is_current_sort_descending"`
}

func toStateJSON(s creatorview.State) stateJSON {
	return stateJSON{
		ActiveTab:               string(s.ActiveTab),
		MyExplorationsView:      string(s.MyExplorationsView),
		CurrentSortType:         string(s.CurrentSortType),
		IsCurrentSortDescending: s.IsCurrentSortDescending,
	}
}
