package models

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exploration publication states.
const (
	StatusPrivate    = "private"
	StatusPublic     = "public"
	StatusPublicized = "publicized"
)

// Ratings maps a star value ("1".."5") to the number of votes it received.
// Keys are strings so the map round-trips through BSON unchanged.
type Ratings map[string]int64

// Star returns the vote count recorded for the given star value.
func (r Ratings) Star(star int) int64 {
	return r[strconv.Itoa(star)]
}

// Exploration is the dashboard's read model of an interactive learning
// activity. Explorations are written by the editor service; this app only
// reads them.
type Exploration struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	OwnerIDs []primitive.ObjectID `bson:"owner_ids" json:"-"`

	Title     *string `bson:"title,omitempty" json:"title"`
	Objective string  `bson:"objective,omitempty" json:"objective,omitempty"`
	Category  string  `bson:"category,omitempty" json:"category,omitempty"`
	Status    string  `bson:"status" json:"status"` // private, public, publicized

	Ratings              Ratings `bson:"ratings,omitempty" json:"ratings"`
	NumViews             int64   `bson:"num_views" json:"num_views"`
	NumTotalThreads      int64   `bson:"num_total_threads" json:"num_total_threads"`
	NumOpenThreads       int64   `bson:"num_open_threads" json:"num_open_threads"`
	NumUnresolvedAnswers int64   `bson:"num_unresolved_answers" json:"num_unresolved_answers"`

	LastUpdatedMsec int64 `bson:"last_updated_msec" json:"last_updated_msec"`

	ThumbnailBgColor string `bson:"thumbnail_bg_color,omitempty" json:"thumbnail_bg_color,omitempty"`
	ThumbnailIconURL string `bson:"thumbnail_icon_url,omitempty" json:"thumbnail_icon_url,omitempty"`
}

// IsPrivate reports whether the exploration has not been published yet.
func (e Exploration) IsPrivate() bool {
	return e.Status == StatusPrivate
}
