// internal/app/store/analytics/store.go
package analytics

import (
	"context"
	"time"

	"github.com/dalemusser/creatorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event types
const (
	EventStartLogin = "start_login"
)

// QueryFilter defines filters for querying analytics events.
type QueryFilter struct {
	EventType string
	Source    string
	UserID    *primitive.ObjectID
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int64
}

// Store manages analytics event records.
type Store struct {
	c *mongo.Collection
}

// New creates a new analytics Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("analytics_events")}
}

// Insert records an event, filling in ID and Timestamp when unset.
func (s *Store) Insert(ctx context.Context, event models.AnalyticsEvent) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, event)
	return err
}

func buildQuery(filter QueryFilter) bson.M {
	query := bson.M{}
	if filter.EventType != "" {
		query["event_type"] = filter.EventType
	}
	if filter.Source != "" {
		query["source"] = filter.Source
	}
	if filter.UserID != nil {
		query["user_id"] = filter.UserID
	}
	if filter.StartTime != nil || filter.EndTime != nil {
		timeQuery := bson.M{}
		if filter.StartTime != nil {
			timeQuery["$gte"] = *filter.StartTime
		}
		if filter.EndTime != nil {
			timeQuery["$lte"] = *filter.EndTime
		}
		query["timestamp"] = timeQuery
	}
	return query
}

// Query retrieves events matching the filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]models.AnalyticsEvent, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, buildQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.AnalyticsEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Count returns the number of events matching the filter.
func (s *Store) Count(ctx context.Context, filter QueryFilter) (int64, error) {
	return s.c.CountDocuments(ctx, buildQuery(filter))
}
