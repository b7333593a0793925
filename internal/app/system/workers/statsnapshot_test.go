package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/creatorhub/internal/app/store/explorations"
	"github.com/dalemusser/creatorhub/internal/app/store/statsnapshots"
	"github.com/dalemusser/creatorhub/internal/domain/models"
	"github.com/dalemusser/creatorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeOwners struct {
	owners []primitive.ObjectID
	byID   map[primitive.ObjectID][]models.Exploration
	failID primitive.ObjectID
}

func (f *fakeOwners) DistinctOwners(context.Context) ([]primitive.ObjectID, error) {
	return f.owners, nil
}

func (f *fakeOwners) ListByOwner(_ context.Context, id primitive.ObjectID) ([]models.Exploration, error) {
	if id == f.failID {
		return nil, errors.New("boom")
	}
	return f.byID[id], nil
}

type memSnapshots struct {
	mu    sync.Mutex
	snaps []models.StatsSnapshot
}

func (m *memSnapshots) Upsert(_ context.Context, s models.StatsSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps = append(m.snaps, s)
	return nil
}

func TestStatsSnapshot_RunOnce(t *testing.T) {
	a, b, bad := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	owners := &fakeOwners{
		owners: []primitive.ObjectID{a, bad, b},
		byID: map[primitive.ObjectID][]models.Exploration{
			a: {{NumViews: 10, NumOpenThreads: 1}, {NumViews: 5}},
			b: {{NumViews: 7, Ratings: models.Ratings{"4": 2}}},
		},
		failID: bad,
	}
	snaps := &memSnapshots{}

	w := NewStatsSnapshot(owners, snaps, zap.NewNop(), time.Hour)
	w.now = func() time.Time { return time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC) }

	if n := w.RunOnce(); n != 2 {
		t.Fatalf("RunOnce wrote %d snapshots, want 2", n)
	}

	week := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	got := map[primitive.ObjectID]models.StatsSnapshot{}
	for _, s := range snaps.snaps {
		if !s.WeekStart.Equal(week) {
			t.Errorf("week start: got %v, want %v", s.WeekStart, week)
		}
		got[s.OwnerID] = s
	}
	if got[a].TotalPlays != 15 || got[a].TotalOpenFeedback != 1 {
		t.Errorf("owner a snapshot: %+v", got[a])
	}
	if got[b].NumRatings != 2 || got[b].AverageRating == nil || *got[b].AverageRating != 4 {
		t.Errorf("owner b snapshot: %+v", got[b])
	}
}

func TestStatsSnapshot_StartStop(t *testing.T) {
	owners := &fakeOwners{}
	w := NewStatsSnapshot(owners, &memSnapshots{}, zap.NewNop(), 10*time.Millisecond)
	w.Start()
	time.Sleep(25 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestStatsSnapshot_Mongo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	fixtures.CreateExploration(ctx, owner, "One", func(e *models.Exploration) { e.NumViews = 9 })

	snapStore := statsnapshots.New(db)
	w := NewStatsSnapshot(explorations.New(db), snapStore, zap.NewNop(), time.Hour)

	// Two runs in the same week leave one record.
	w.RunOnce()
	w.RunOnce()

	list, err := snapStore.ListByOwner(ctx, owner, 0)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(list))
	}
	if list[0].TotalPlays != 9 {
		t.Errorf("TotalPlays: got %d, want 9", list[0].TotalPlays)
	}
}
