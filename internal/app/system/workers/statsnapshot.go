// internal/app/system/workers/statsnapshot.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/creatorhub/internal/app/store/statsnapshots"
	"github.com/dalemusser/creatorhub/internal/app/system/creatorview"
	"github.com/dalemusser/creatorhub/internal/app/system/timeouts"
	"github.com/dalemusser/creatorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// OwnerSource lists creators and their explorations.
type OwnerSource interface {
	DistinctOwners(ctx context.Context) ([]primitive.ObjectID, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Exploration, error)
}

// SnapshotWriter persists weekly snapshots.
type SnapshotWriter interface {
	Upsert(ctx context.Context, snap models.StatsSnapshot) error
}

// StatsSnapshot is a background worker that records each creator's totals
// for the current week. The dashboard compares live totals against the
// previous week's record.
type StatsSnapshot struct {
	owners    OwnerSource
	snapshots SnapshotWriter
	log       *zap.Logger
	interval  time.Duration
	now       func() time.Time
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewStatsSnapshot creates the worker. interval is how often the sweep runs;
// every run overwrites the current week's record.
func NewStatsSnapshot(owners OwnerSource, snapshots SnapshotWriter, logger *zap.Logger, interval time.Duration) *StatsSnapshot {
	if interval <= 0 {
		interval = time.Hour
	}
	return &StatsSnapshot{
		owners:    owners,
		snapshots: snapshots,
		log:       logger,
		interval:  interval,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
}

// Start runs one sweep immediately, then one per interval.
func (w *StatsSnapshot) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("stats snapshot worker started", zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *StatsSnapshot) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("stats snapshot worker stopped")
}

func (w *StatsSnapshot) run() {
	defer w.wg.Done()

	w.RunOnce()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.RunOnce()
		}
	}
}

// RunOnce snapshots every creator. It returns the number of snapshots
// written. Per-owner failures are logged and skipped.
func (w *StatsSnapshot) RunOnce() int {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Long())
	defer cancel()

	owners, err := w.owners.DistinctOwners(ctx)
	if err != nil {
		w.log.Error("failed to list exploration owners", zap.Error(err))
		return 0
	}

	week := statsnapshots.WeekStart(w.now())
	written := 0
	for _, owner := range owners {
		select {
		case <-w.stopCh:
			return written
		default:
		}

		exps, err := w.owners.ListByOwner(ctx, owner)
		if err != nil {
			w.log.Warn("failed to list explorations for snapshot",
				zap.String("owner_id", owner.Hex()), zap.Error(err))
			continue
		}
		snap := creatorview.SnapshotFromStats(creatorview.ComputeStats(exps, nil))
		snap.OwnerID = owner
		snap.WeekStart = week
		if err := w.snapshots.Upsert(ctx, snap); err != nil {
			w.log.Warn("failed to write stats snapshot",
				zap.String("owner_id", owner.Hex()), zap.Error(err))
			continue
		}
		written++
	}

	if written > 0 {
		w.log.Info("stats snapshots written",
			zap.Int("count", written),
			zap.Time("week_start", week))
	}
	return written
}
