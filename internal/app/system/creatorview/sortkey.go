package creatorview

import (
	"fmt"
	"strings"
)

// SortKey names the column the exploration list is ordered by.
type SortKey string

const (
	SortByTitle             SortKey = "title"
	SortByRating            SortKey = "rating"
	SortByNumViews          SortKey = "num_views"
	SortByOpenFeedback      SortKey = "open_feedback"
	SortByLastUpdated       SortKey = "last_updated"
	SortByUnresolvedAnswers SortKey = "unresolved_answers"
)

// SortKeys lists every key in column order.
var SortKeys = []SortKey{
	SortByTitle,
	SortByRating,
	SortByNumViews,
	SortByOpenFeedback,
	SortByLastUpdated,
	SortByUnresolvedAnswers,
}

// ParseSortKey converts a request value into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SortKeys {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// DefaultDescending is the direction a key starts in when it is first
// selected. Recency sorts newest first; every other key sorts ascending.
func DefaultDescending(k SortKey) bool {
	return k == SortByLastUpdated
}

// Label is the column heading for the key.
func (k SortKey) Label() string {
	switch k {
	case SortByTitle:
		return "Title"
	case SortByRating:
		return "Average Rating"
	case SortByNumViews:
		return "Total Plays"
	case SortByOpenFeedback:
		return "Feedback"
	case SortByLastUpdated:
		return "Last Updated"
	case SortByUnresolvedAnswers:
		return "Unresolved Answers"
	}
	return string(k)
}
