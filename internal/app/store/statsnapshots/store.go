// internal/app/store/statsnapshots/store.go
package statsnapshots

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/creatorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages weekly creator stats snapshots.
type Store struct {
	c *mongo.Collection
}

// New creates a new snapshots Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("creator_stats_snapshots")}
}

// WeekStart returns Monday 00:00 UTC of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, -offset)
}

// Upsert writes the snapshot for (snap.OwnerID, WeekStart(snap.WeekStart)).
// Running it again in the same week overwrites the totals and keeps
// created_at.
func (s *Store) Upsert(ctx context.Context, snap models.StatsSnapshot) error {
	week := WeekStart(snap.WeekStart)
	now := time.Now().UTC()

	set := bson.M{
		"total_plays":         snap.TotalPlays,
		"num_ratings":         snap.NumRatings,
		"total_open_feedback": snap.TotalOpenFeedback,
		"updated_at":          now,
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_at": now,
		},
	}
	if snap.AverageRating != nil {
		set["average_rating"] = *snap.AverageRating
	} else {
		update["$unset"] = bson.M{"average_rating": ""}
	}

	_, err := s.c.UpdateOne(ctx,
		bson.M{"owner_id": snap.OwnerID, "week_start": week},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

// LatestBefore returns the newest snapshot for ownerID whose week starts
// strictly before t. Returns (nil, nil) when there is none.
func (s *Store) LatestBefore(ctx context.Context, ownerID primitive.ObjectID, t time.Time) (*models.StatsSnapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "week_start", Value: -1}})

	var snap models.StatsSnapshot
	err := s.c.FindOne(ctx, bson.M{
		"owner_id":   ownerID,
		"week_start": bson.M{"$lt": t.UTC()},
	}, opts).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// ListByOwner returns every snapshot for ownerID, newest week first.
func (s *Store) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, limit int64) ([]models.StatsSnapshot, error) {
	if limit <= 0 {
		limit = 52
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "week_start", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.StatsSnapshot
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
