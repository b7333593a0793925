package creatorview

import (
	"strings"

	"github.com/dalemusser/creatorhub/internal/domain/models"
	"github.com/sahilm/fuzzy"
)

type titleSource []models.Exploration

func (s titleSource) String(i int) string { return DisplayTitle(s[i].Title) }
func (s titleSource) Len() int            { return len(s) }

// FilterExplorations keeps the explorations whose title fuzzily matches q.
// Survivors stay in their incoming order; an empty query keeps everything.
func FilterExplorations(list []models.Exploration, q string) []models.Exploration {
	q = strings.TrimSpace(q)
	if q == "" {
		return list
	}
	matched := make(map[int]bool)
	for _, m := range fuzzy.FindFrom(q, titleSource(list)) {
		matched[m.Index] = true
	}
	out := make([]models.Exploration, 0, len(matched))
	for i, e := range list {
		if matched[i] {
			out = append(out, e)
		}
	}
	return out
}
