package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/creatorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateExploration inserts a public exploration owned by ownerID.
// Use the mutate callback to adjust fields before insertion.
func (f *Fixtures) CreateExploration(ctx context.Context, ownerID primitive.ObjectID, title string, mutate func(*models.Exploration)) models.Exploration {
	f.t.Helper()

	e := models.Exploration{
		ID:              primitive.NewObjectID(),
		OwnerIDs:        []primitive.ObjectID{ownerID},
		Title:           &title,
		Objective:       "Test objective",
		Category:        "Mathematics",
		Status:          models.StatusPublic,
		Ratings:         models.Ratings{},
		LastUpdatedMsec: time.Now().UnixMilli(),
	}
	if mutate != nil {
		mutate(&e)
	}

	if _, err := f.db.Collection("explorations").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test exploration: %v", err)
	}
	return e
}

// CreateCollection inserts a collection owned by ownerID.
func (f *Fixtures) CreateCollection(ctx context.Context, ownerID primitive.ObjectID, title string, nodeCount int64) models.Collection {
	f.t.Helper()

	objective := "Test collection objective"
	c := models.Collection{
		ID:              primitive.NewObjectID(),
		OwnerIDs:        []primitive.ObjectID{ownerID},
		Title:           &title,
		Objective:       &objective,
		Category:        "Mathematics",
		Status:          models.StatusPublic,
		NodeCount:       nodeCount,
		LastUpdatedMsec: time.Now().UnixMilli(),
	}

	if _, err := f.db.Collection("collections").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test collection: %v", err)
	}
	return c
}

// CreateSnapshot inserts a weekly stats snapshot for ownerID.
func (f *Fixtures) CreateSnapshot(ctx context.Context, ownerID primitive.ObjectID, weekStart time.Time, totalPlays int64) models.StatsSnapshot {
	f.t.Helper()

	now := time.Now().UTC()
	s := models.StatsSnapshot{
		ID:         primitive.NewObjectID(),
		OwnerID:    ownerID,
		WeekStart:  weekStart,
		TotalPlays: totalPlays,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("creator_stats_snapshots").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test snapshot: %v", err)
	}
	return s
}
