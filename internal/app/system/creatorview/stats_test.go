package creatorview_test

import (
	"testing"

	"github.com/dalemusser/creatorhub/internal/app/system/creatorview"
	"github.com/dalemusser/creatorhub/internal/domain/models"
)

func TestComputeStats_Empty(t *testing.T) {
	s := creatorview.ComputeStats(nil, nil)
	if s.AverageRating != nil {
		t.Errorf("AverageRating: got %v, want nil", *s.AverageRating)
	}
	if s.NumRatings != 0 || s.TotalPlays != 0 || s.TotalOpenFeedback != 0 {
		t.Errorf("expected zero totals, got %+v", s)
	}
	if s.RelativeChangeInTotalPlays != nil {
		t.Error("expected no relative change")
	}
}

func TestComputeStats_Totals(t *testing.T) {
	a := exp("a", 10)
	a.Ratings = models.Ratings{"5": 2}
	a.NumOpenThreads = 1
	b := exp("b", 30)
	b.Ratings = models.Ratings{"2": 2}
	b.NumOpenThreads = 4
	c := exp("c", 0)
	c.Status = models.StatusPrivate

	s := creatorview.ComputeStats([]models.Exploration{a, b, c}, &models.StatsSnapshot{TotalPlays: 32})

	if s.AverageRating == nil || *s.AverageRating != 3.5 {
		t.Errorf("AverageRating: got %v, want 3.5", s.AverageRating)
	}
	if s.NumRatings != 4 {
		t.Errorf("NumRatings: got %d, want 4", s.NumRatings)
	}
	if s.TotalPlays != 40 {
		t.Errorf("TotalPlays: got %d, want 40", s.TotalPlays)
	}
	if s.TotalOpenFeedback != 5 {
		t.Errorf("TotalOpenFeedback: got %d, want 5", s.TotalOpenFeedback)
	}
	if s.RelativeChangeInTotalPlays == nil || *s.RelativeChangeInTotalPlays != 25 {
		t.Errorf("RelativeChangeInTotalPlays: got %v, want 25", s.RelativeChangeInTotalPlays)
	}
}

func TestRelativeChange_NoBaseline(t *testing.T) {
	if creatorview.RelativeChange(10, nil) != nil {
		t.Error("nil snapshot should give nil")
	}
	if creatorview.RelativeChange(10, &models.StatsSnapshot{TotalPlays: 0}) != nil {
		t.Error("zero baseline should give nil")
	}
	got := creatorview.RelativeChange(5, &models.StatsSnapshot{TotalPlays: 10})
	if got == nil || *got != -50 {
		t.Errorf("got %v, want -50", got)
	}
}

func TestSnapshotFromStats(t *testing.T) {
	avg := 4.0
	snap := creatorview.SnapshotFromStats(models.DashboardStats{AverageRating: &avg, NumRatings: 3, TotalPlays: 9, TotalOpenFeedback: 2})
	if snap.TotalPlays != 9 || snap.NumRatings != 3 || snap.TotalOpenFeedback != 2 || snap.AverageRating == nil {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}
