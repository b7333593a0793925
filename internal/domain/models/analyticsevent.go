package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsEvent is a single product-analytics record, such as a visitor
// clicking "sign in to create".
type AnalyticsEvent struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	EventID   string              `bson:"event_id"`
	EventType string              `bson:"event_type"`
	Source    string              `bson:"source"`
	UserID    *primitive.ObjectID `bson:"user_id,omitempty"`
	IP        string              `bson:"ip,omitempty"`
	UserAgent string              `bson:"user_agent,omitempty"`
	Details   map[string]string   `bson:"details,omitempty"`
	Timestamp time.Time           `bson:"timestamp"`
}
