package creatorview

import (
	"math"
	"strconv"

	"github.com/dalemusser/creatorhub/internal/domain/models"
)

// NotAvailable is rendered wherever a metric has no value.
const NotAvailable = "N/A"

// AverageRating returns the weighted mean star value of the mapping.
// ok is false when no votes were cast; callers must show NotAvailable
// rather than 0. Keys outside 1..5 and non-positive counts are ignored.
func AverageRating(ratings models.Ratings) (avg float64, ok bool) {
	var weighted, total int64
	for key, count := range ratings {
		star, err := strconv.Atoi(key)
		if err != nil || star < 1 || star > 5 || count <= 0 {
			continue
		}
		weighted += int64(star) * count
		total += count
	}
	if total == 0 {
		return 0, false
	}
	return float64(weighted) / float64(total), true
}

// RatingCount is the number of votes in the mapping, using the same
// filtering as AverageRating.
func RatingCount(ratings models.Ratings) int64 {
	var total int64
	for key, count := range ratings {
		star, err := strconv.Atoi(key)
		if err != nil || star < 1 || star > 5 || count <= 0 {
			continue
		}
		total += count
	}
	return total
}

// FormatRating rounds to one decimal place for display.
func FormatRating(avg float64, ok bool) string {
	if !ok || math.IsNaN(avg) {
		return NotAvailable
	}
	return strconv.FormatFloat(math.Round(avg*10)/10, 'f', 1, 64)
}

// FormatRatingPtr is FormatRating for optional values.
func FormatRatingPtr(avg *float64) string {
	if avg == nil {
		return NotAvailable
	}
	return FormatRating(*avg, true)
}
