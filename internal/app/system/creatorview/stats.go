package creatorview

import (
	"github.com/dalemusser/creatorhub/internal/domain/models"
)

// PooledRatings merges the rating mappings of all explorations.
func PooledRatings(explorations []models.Exploration) models.Ratings {
	pooled := models.Ratings{}
	for _, e := range explorations {
		for k, v := range e.Ratings {
			pooled[k] += v
		}
	}
	return pooled
}

// ComputeStats derives the dashboard-wide metrics from the creator's
// explorations. lastWeek may be nil, in which case no week-over-week
// change is reported.
func ComputeStats(explorations []models.Exploration, lastWeek *models.StatsSnapshot) models.DashboardStats {
	var out models.DashboardStats

	pooled := PooledRatings(explorations)
	if avg, ok := AverageRating(pooled); ok {
		out.AverageRating = &avg
	}
	out.NumRatings = RatingCount(pooled)

	for _, e := range explorations {
		out.TotalPlays += e.NumViews
		out.TotalOpenFeedback += e.NumOpenThreads
	}

	out.RelativeChangeInTotalPlays = RelativeChange(out.TotalPlays, lastWeek)
	return out
}

// RelativeChange is the percentage change of plays against the snapshot.
// It is nil when there is no snapshot or the baseline is zero.
func RelativeChange(plays int64, lastWeek *models.StatsSnapshot) *float64 {
	if lastWeek == nil || lastWeek.TotalPlays <= 0 {
		return nil
	}
	pct := float64(plays-lastWeek.TotalPlays) / float64(lastWeek.TotalPlays) * 100
	return &pct
}

// SnapshotFromStats converts live totals into a snapshot body.
func SnapshotFromStats(stats models.DashboardStats) models.StatsSnapshot {
	return models.StatsSnapshot{
		TotalPlays:        stats.TotalPlays,
		NumRatings:        stats.NumRatings,
		AverageRating:     stats.AverageRating,
		TotalOpenFeedback: stats.TotalOpenFeedback,
	}
}
