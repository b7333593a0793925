// Package dashdata loads everything the creator dashboard shows for one
// owner in a single pass.
package dashdata

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/creatorhub/internal/app/store/collections"
	"github.com/dalemusser/creatorhub/internal/app/store/explorations"
	"github.com/dalemusser/creatorhub/internal/app/store/statsnapshots"
	"github.com/dalemusser/creatorhub/internal/app/system/creatorview"
	"github.com/dalemusser/creatorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ExplorationLister interface {
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Exploration, error)
}

type CollectionLister interface {
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Collection, error)
}

type SnapshotReader interface {
	LatestBefore(ctx context.Context, ownerID primitive.ObjectID, t time.Time) (*models.StatsSnapshot, error)
}

// Result is one owner's dashboard data.
type Result struct {
	Explorations []models.Exploration
	Collections  []models.Collection
	Stats        models.DashboardStats
	LastWeek     *models.StatsSnapshot
}

// Service reads dashboard data.
type Service struct {
	Explorations ExplorationLister
	Collections  CollectionLister
	Snapshots    SnapshotReader
	Log          *zap.Logger
	Now          func() time.Time
}

// New wires a Service to the Mongo stores.
func New(db *mongo.Database, logger *zap.Logger) *Service {
	return &Service{
		Explorations: explorations.New(db),
		Collections:  collections.New(db),
		Snapshots:    statsnapshots.New(db),
		Log:          logger,
		Now:          time.Now,
	}
}

// Fetch reads the owner's explorations and collections and derives the
// aggregate stats. The previous week's snapshot is optional: if it cannot
// be read the stats are returned without a week-over-week change.
func (s *Service) Fetch(ctx context.Context, ownerID primitive.ObjectID) (Result, error) {
	exps, err := s.Explorations.ListByOwner(ctx, ownerID)
	if err != nil {
		return Result{}, fmt.Errorf("list explorations: %w", err)
	}
	cols, err := s.Collections.ListByOwner(ctx, ownerID)
	if err != nil {
		return Result{}, fmt.Errorf("list collections: %w", err)
	}

	var lastWeek *models.StatsSnapshot
	if s.Snapshots != nil {
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		lastWeek, err = s.Snapshots.LatestBefore(ctx, ownerID, statsnapshots.WeekStart(now()))
		if err != nil {
			if s.Log != nil {
				s.Log.Warn("stats snapshot lookup failed",
					zap.String("owner_id", ownerID.Hex()),
					zap.Error(err))
			}
			lastWeek = nil
		}
	}

	return Result{
		Explorations: exps,
		Collections:  cols,
		Stats:        creatorview.ComputeStats(exps, lastWeek),
		LastWeek:     lastWeek,
	}, nil
}
