package analytics_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	analyticsstore "github.com/dalemusser/creatorhub/internal/app/store/analytics"
	"github.com/dalemusser/creatorhub/internal/app/system/analytics"
	"github.com/dalemusser/creatorhub/internal/domain/models"
	"github.com/dalemusser/creatorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memSink struct {
	mu     sync.Mutex
	events []models.AnalyticsEvent
	err    error
}

func (m *memSink) Insert(_ context.Context, e models.AnalyticsEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, e)
	return nil
}

func (m *memSink) all() []models.AnalyticsEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AnalyticsEvent(nil), m.events...)
}

func TestRecorder_Nil(t *testing.T) {
	var r *analytics.Recorder
	if err := r.RecordStartLoginEvent(context.Background(), "x"); err != nil {
		t.Errorf("nil recorder returned %v", err)
	}
	if err := r.Record(context.Background(), models.AnalyticsEvent{}); err != nil {
		t.Errorf("nil recorder returned %v", err)
	}
	r.Wait()
}

func TestRecorder_RecordStartLoginEvent(t *testing.T) {
	sink := &memSink{}
	r := analytics.New(sink, zap.NewNop(), analytics.ModeDB)

	user := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/create/login", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "TestBrowser/1.0")
	ctx := analytics.WithClient(context.Background(), analytics.ClientFromRequest(req, &user))

	if err := r.RecordStartLoginEvent(ctx, "CreateActivityButton"); err != nil {
		t.Fatalf("RecordStartLoginEvent: %v", err)
	}
	r.Wait()

	got := sink.all()
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	e := got[0]
	if e.EventType != analyticsstore.EventStartLogin {
		t.Errorf("event type: got %q", e.EventType)
	}
	if e.Source != "CreateActivityButton" {
		t.Errorf("source: got %q", e.Source)
	}
	if e.EventID == "" {
		t.Error("expected event id")
	}
	if e.IP != "203.0.113.7" {
		t.Errorf("ip: got %q", e.IP)
	}
	if e.UserAgent != "TestBrowser/1.0" {
		t.Errorf("user agent: got %q", e.UserAgent)
	}
	if e.UserID == nil || *e.UserID != user {
		t.Errorf("user id: got %v, want %s", e.UserID, user.Hex())
	}
}

func TestRecorder_RecordStartLoginEvent_SurvivesCanceledContext(t *testing.T) {
	sink := &memSink{}
	r := analytics.New(sink, zap.NewNop(), analytics.ModeAll)

	ctx, cancel := context.WithCancel(context.Background())
	_ = r.RecordStartLoginEvent(ctx, "CreateActivityButton")
	cancel()
	r.Wait()

	if n := len(sink.all()); n != 1 {
		t.Errorf("expected event to be written after request ended, got %d", n)
	}
}

func TestRecorder_StoreFailureDoesNotSurface(t *testing.T) {
	sink := &memSink{err: errors.New("boom")}
	r := analytics.New(sink, zap.NewNop(), analytics.ModeDB)

	if err := r.RecordStartLoginEvent(context.Background(), "CreateActivityButton"); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	r.Wait()

	if err := r.Record(context.Background(), models.AnalyticsEvent{EventType: "x"}); err == nil {
		t.Error("expected synchronous Record to report the storage error")
	}
}

func TestRecorder_Modes(t *testing.T) {
	tests := []struct {
		mode   string
		wantDB int
	}{
		{analytics.ModeAll, 1},
		{analytics.ModeDB, 1},
		{analytics.ModeLog, 0},
		{analytics.ModeOff, 0},
		{"bogus", 1}, // falls back to all
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			sink := &memSink{}
			r := analytics.New(sink, zap.NewNop(), tt.mode)
			if err := r.Record(context.Background(), models.AnalyticsEvent{EventType: "x"}); err != nil {
				t.Fatalf("Record: %v", err)
			}
			if got := len(sink.all()); got != tt.wantDB {
				t.Errorf("stored events: got %d, want %d", got, tt.wantDB)
			}
		})
	}
}

func TestValidMode(t *testing.T) {
	for _, s := range []string{"all", "db", "log", "off", " ALL "} {
		if !analytics.ValidMode(s) {
			t.Errorf("ValidMode(%q) = false", s)
		}
	}
	for _, s := range []string{"", "mongo", "both"} {
		if analytics.ValidMode(s) {
			t.Errorf("ValidMode(%q) = true", s)
		}
	}
}

func TestRecorder_WithMongoStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := analyticsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := analytics.NewForStore(store, zap.NewNop(), analytics.ModeDB)
	_ = r.RecordStartLoginEvent(ctx, "CreateActivityButton")
	r.Wait()

	n, err := store.Count(ctx, analyticsstore.QueryFilter{
		EventType: analyticsstore.EventStartLogin,
		Source:    "CreateActivityButton",
	})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 stored event, got %d", n)
	}
}
