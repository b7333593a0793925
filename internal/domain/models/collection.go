package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is an ordered grouping of explorations with its own metadata.
type Collection struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	OwnerIDs []primitive.ObjectID `bson:"owner_ids" json:"-"`

	Title     *string `bson:"title,omitempty" json:"title"`
	Objective *string `bson:"objective,omitempty" json:"objective"`
	Category  string  `bson:"category,omitempty" json:"category,omitempty"`
	Status    string  `bson:"status" json:"status"`

	NodeCount       int64 `bson:"node_count" json:"node_count"`
	LastUpdatedMsec int64 `bson:"last_updated_msec" json:"last_updated_msec"`

	ThumbnailBgColor string `bson:"thumbnail_bg_color,omitempty" json:"thumbnail_bg_color,omitempty"`
	ThumbnailIconURL string `bson:"thumbnail_icon_url,omitempty" json:"thumbnail_icon_url,omitempty"`
}
