package creatorview_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/dalemusser/creatorhub/internal/app/system/creatorview"
	"github.com/dalemusser/creatorhub/internal/domain/models"
)

func TestAverageRating_NoVotes(t *testing.T) {
	tests := []struct {
		name    string
		ratings models.Ratings
	}{
		{"nil map", nil},
		{"empty map", models.Ratings{}},
		{"all zero", models.Ratings{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}},
		{"only invalid keys", models.Ratings{"0": 3, "6": 2, "x": 9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			avg, ok := creatorview.AverageRating(tc.ratings)
			if ok {
				t.Errorf("expected no rating, got %v", avg)
			}
			if got := creatorview.FormatRating(avg, ok); got != creatorview.NotAvailable {
				t.Errorf("FormatRating: got %q, want %q", got, creatorview.NotAvailable)
			}
		})
	}
}

func TestAverageRating_WeightedMean(t *testing.T) {
	avg, ok := creatorview.AverageRating(models.Ratings{"1": 1, "5": 3})
	if !ok {
		t.Fatal("expected a rating")
	}
	if avg != 4.0 {
		t.Errorf("got %v, want 4.0", avg)
	}
}

func TestAverageRating_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		ratings := models.Ratings{}
		var weighted, total int64
		for star := 1; star <= 5; star++ {
			n := int64(rng.Intn(50))
			ratings[strconv.Itoa(star)] = n
			weighted += int64(star) * n
			total += n
		}

		avg, ok := creatorview.AverageRating(ratings)
		if total == 0 {
			if ok {
				t.Fatalf("case %d: expected no rating for %v", i, ratings)
			}
			continue
		}
		want := float64(weighted) / float64(total)
		if !ok || avg != want {
			t.Fatalf("case %d: AverageRating(%v) = %v, %v; want %v", i, ratings, avg, ok, want)
		}
	}
}

func TestFormatRating_RoundsForDisplayOnly(t *testing.T) {
	ratings := models.Ratings{"4": 2, "5": 1} // 13/3 = 4.333...
	avg, ok := creatorview.AverageRating(ratings)
	if got := creatorview.FormatRating(avg, ok); got != "4.3" {
		t.Errorf("FormatRating: got %q, want %q", got, "4.3")
	}
	if avg == 4.3 {
		t.Error("AverageRating must return the unrounded value")
	}
}

func TestFormatRatingPtr_Nil(t *testing.T) {
	if got := creatorview.FormatRatingPtr(nil); got != "N/A" {
		t.Errorf("got %q, want N/A", got)
	}
}
