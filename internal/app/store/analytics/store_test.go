package analytics_test

import (
	"testing"
	"time"

	"github.com/dalemusser/creatorhub/internal/app/store/analytics"
	"github.com/dalemusser/creatorhub/internal/domain/models"
	"github.com/dalemusser/creatorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Insert_FillsDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := analytics.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := time.Now().Add(-time.Second)
	err := store.Insert(ctx, models.AnalyticsEvent{
		EventID:   "evt-1",
		EventType: analytics.EventStartLogin,
		Source:    "CreateActivityButton",
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	events, err := store.Query(ctx, analytics.QueryFilter{EventType: analytics.EventStartLogin})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID.IsZero() {
		t.Error("expected ID to be auto-generated")
	}
	if events[0].Timestamp.Before(before) {
		t.Errorf("expected timestamp after %v, got %v", before, events[0].Timestamp)
	}
	if events[0].Source != "CreateActivityButton" {
		t.Errorf("source: got %q", events[0].Source)
	}
}

func TestStore_Count_BySourceAndUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := analytics.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := primitive.NewObjectID()
	events := []models.AnalyticsEvent{
		{EventID: "a", EventType: analytics.EventStartLogin, Source: "CreateActivityButton", UserID: &user},
		{EventID: "b", EventType: analytics.EventStartLogin, Source: "CreateActivityButton"},
		{EventID: "c", EventType: analytics.EventStartLogin, Source: "NavBar"},
	}
	for _, e := range events {
		if err := store.Insert(ctx, e); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	n, err := store.Count(ctx, analytics.QueryFilter{Source: "CreateActivityButton"})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("count by source: got %d, want 2", n)
	}

	n, err = store.Count(ctx, analytics.QueryFilter{UserID: &user})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("count by user: got %d, want 1", n)
	}
}
