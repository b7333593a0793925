package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DashboardStats are the creator-wide metrics shown above the lists.
// Nil pointers mean "not available" and must render as N/A, never 0.
type DashboardStats struct {
	AverageRating              *float64 `json:"average_ratings"`
	NumRatings                 int64    `json:"num_ratings"`
	TotalPlays                 int64    `json:"total_plays"`
	TotalOpenFeedback          int64    `json:"total_open_feedback"`
	RelativeChangeInTotalPlays *float64 `json:"relative_change_in_total_plays"`
}

// StatsSnapshot records a creator's totals for one week. The dashboard
// compares the live totals against the previous week's snapshot.
type StatsSnapshot struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID           primitive.ObjectID `bson:"owner_id"`
	WeekStart         time.Time          `bson:"week_start"` // Monday 00:00 UTC
	TotalPlays        int64              `bson:"total_plays"`
	NumRatings        int64              `bson:"num_ratings"`
	AverageRating     *float64           `bson:"average_rating,omitempty"`
	TotalOpenFeedback int64              `bson:"total_open_feedback"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}
