package creatorview

import (
	"cmp"
	"sort"

	"github.com/dalemusser/creatorhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// compareExplorations orders a and b ascending by key.
func compareExplorations(key SortKey, a, b *models.Exploration) int {
	switch key {
	case SortByTitle:
		return cmp.Compare(text.Fold(DisplayTitle(a.Title)), text.Fold(DisplayTitle(b.Title)))
	case SortByRating:
		ra, okA := AverageRating(a.Ratings)
		rb, okB := AverageRating(b.Ratings)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		return cmp.Compare(ra, rb)
	case SortByNumViews:
		return cmp.Compare(a.NumViews, b.NumViews)
	case SortByOpenFeedback:
		return cmp.Compare(a.NumTotalThreads, b.NumTotalThreads)
	case SortByUnresolvedAnswers:
		return cmp.Compare(a.NumUnresolvedAnswers, b.NumUnresolvedAnswers)
	case SortByLastUpdated:
		return cmp.Compare(a.LastUpdatedMsec, b.LastUpdatedMsec)
	}
	return 0
}

// SortExplorations returns a sorted copy of list. The sort is stable, so
// items with equal keys keep their original relative order in either
// direction. The input slice is not modified.
func SortExplorations(list []models.Exploration, key SortKey, descending bool) []models.Exploration {
	out := make([]models.Exploration, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareExplorations(key, &out[i], &out[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
	return out
}
