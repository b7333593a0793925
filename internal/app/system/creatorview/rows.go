package creatorview

import (
	"time"

	"github.com/dalemusser/creatorhub/internal/domain/models"
)

// RenderOptions carries the per-request inputs that formatting needs.
type RenderOptions struct {
	Locale   Locale
	Now      time.Time
	BasePath string // mount point of the dashboard, e.g. "/creator-dashboard"
	Filter   string // optional fuzzy title filter
}

// ExplorationRow is one exploration ready for the list or card template.
type ExplorationRow struct {
	ID               string
	Title            string
	Objective        string
	Category         string
	Status           string
	Visible          FieldSet
	NotPublishedText string

	Rating            string
	Views             string
	OpenFeedback      string
	TotalFeedback     string
	UnresolvedAnswers string
	LastUpdated       string

	ThumbnailBgColor string
	ThumbnailIconURL string
	EditURL          string
}

// CollectionCard is one collection ready for the template.
type CollectionCard struct {
	ID               string
	Title            string
	Objective        string
	Category         string
	NodeCount        string
	LastUpdated      string
	ThumbnailBgColor string
	ThumbnailIconURL string
	EditURL          string
}

// StatCard is one tile of the aggregate stats strip.
type StatCard struct {
	Label     string
	Value     string
	Delta     string // e.g. "+12.5%"
	DeltaType string // positive, negative, neutral
}

// SortHeader describes one clickable column heading.
type SortHeader struct {
	Key        SortKey
	Label      string
	Active     bool
	Descending bool
	URL        string
}

// NewExplorationRow projects a single exploration.
func NewExplorationRow(e models.Exploration, opts RenderOptions) ExplorationRow {
	visible := VisibleFields(e.Status)
	avg, ok := AverageRating(e.Ratings)
	row := ExplorationRow{
		ID:                e.ID.Hex(),
		Title:             DisplayTitle(e.Title),
		Objective:         DisplayObjective(&e.Objective),
		Category:          e.Category,
		Status:            e.Status,
		Visible:           visible,
		UnresolvedAnswers: FormatCount(e.NumUnresolvedAnswers, opts.Locale),
		LastUpdated:       LocaleAbbreviatedDatetime(e.LastUpdatedMsec, opts.Now, opts.Locale),
		ThumbnailBgColor:  e.ThumbnailBgColor,
		ThumbnailIconURL:  e.ThumbnailIconURL,
		EditURL:           opts.BasePath + "/explorations/" + e.ID.Hex() + "/edit",
	}
	if visible.Has(FieldNotPublished) {
		row.NotPublishedText = NotPublishedText
		return row
	}
	row.Rating = FormatRating(avg, ok)
	row.Views = FormatCount(e.NumViews, opts.Locale)
	row.OpenFeedback = FormatCount(e.NumOpenThreads, opts.Locale)
	row.TotalFeedback = FormatCount(e.NumTotalThreads, opts.Locale)
	return row
}

// ExplorationRows returns the sorted, optionally filtered exploration rows.
func (vm *ViewModel) ExplorationRows(opts RenderOptions) []ExplorationRow {
	list := FilterExplorations(vm.SortedExplorations(), opts.Filter)
	rows := make([]ExplorationRow, 0, len(list))
	for _, e := range list {
		rows = append(rows, NewExplorationRow(e, opts))
	}
	return rows
}

// CollectionCards returns the collections in fetch order.
func (vm *ViewModel) CollectionCards(opts RenderOptions) []CollectionCard {
	cards := make([]CollectionCard, 0, len(vm.Collections))
	for _, c := range vm.Collections {
		cards = append(cards, CollectionCard{
			ID:               c.ID.Hex(),
			Title:            DisplayTitle(c.Title),
			Objective:        DisplayObjective(c.Objective),
			Category:         c.Category,
			NodeCount:        FormatCount(c.NodeCount, opts.Locale),
			LastUpdated:      LocaleAbbreviatedDatetime(c.LastUpdatedMsec, opts.Now, opts.Locale),
			ThumbnailBgColor: c.ThumbnailBgColor,
			ThumbnailIconURL: c.ThumbnailIconURL,
			EditURL:          opts.BasePath + "/collections/" + c.ID.Hex() + "/edit",
		})
	}
	return cards
}

// StatCards summarizes vm.Stats for the stats strip.
func (vm *ViewModel) StatCards(opts RenderOptions) []StatCard {
	s := vm.Stats

	plays := StatCard{
		Label:     "Total Plays",
		Value:     FormatCount(s.TotalPlays, opts.Locale),
		Delta:     FormatRelativeChange(s.RelativeChangeInTotalPlays),
		DeltaType: "neutral",
	}
	if p := s.RelativeChangeInTotalPlays; p != nil {
		switch {
		case *p > 0:
			plays.DeltaType = "positive"
		case *p < 0:
			plays.DeltaType = "negative"
		}
	}

	return []StatCard{
		{Label: "Average Rating", Value: FormatRatingPtr(s.AverageRating), DeltaType: "neutral"},
		{Label: "Number of Ratings", Value: FormatCount(s.NumRatings, opts.Locale), DeltaType: "neutral"},
		plays,
		{Label: "Open Feedback", Value: FormatCount(s.TotalOpenFeedback, opts.Locale), DeltaType: "neutral"},
	}
}

// SortHeaders returns one heading per sort key, pointing at the route that
// applies SetExplorationsSortingOptions for it.
func (vm *ViewModel) SortHeaders(opts RenderOptions) []SortHeader {
	headers := make([]SortHeader, 0, len(SortKeys))
	for _, k := range SortKeys {
		headers = append(headers, SortHeader{
			Key:        k,
			Label:      k.Label(),
			Active:     k == vm.CurrentSortType,
			Descending: k == vm.CurrentSortType && vm.IsCurrentSortDescending,
			URL:        opts.BasePath + "/sort/" + string(k),
		})
	}
	return headers
}
