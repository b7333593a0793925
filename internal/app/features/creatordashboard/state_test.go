package creatordashboard_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/creatorhub/internal/app/features/creatordashboard"
	"github.com/dalemusser/creatorhub/internal/app/system/auth"
	"github.com/dalemusser/creatorhub/internal/app/system/creatorview"
	"go.uber.org/zap"
)

func TestSessionState_RoundTrip(t *testing.T) {
	sm, err := auth.NewSessionManager(testKey, "test-session", "", time.Hour, false, "", zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	store := creatordashboard.SessionState{Sessions: sm}

	// A fresh session starts at the defaults.
	if got := store.Load(httptest.NewRequest("GET", "/", nil)); got != creatorview.DefaultState() {
		t.Errorf("fresh session: got %+v", got)
	}

	want := creatorview.State{
		ActiveTab:               creatorview.TabMyCollections,
		MyExplorationsView:      creatorview.ViewList,
		CurrentSortType:         creatorview.SortByRating,
		IsCurrentSortDescending: true,
	}
	rec := httptest.NewRecorder()
	if err := store.Save(rec, httptest.NewRequest("POST", "/", nil), want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Save wrote no cookie")
	}

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	if got := store.Load(req); got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestEditorLinks(t *testing.T) {
	l := creatordashboard.EditorLinks{
		ExplorationBaseURL: "https://editor.example.com/create",
		CollectionBaseURL:  "https://editor.example.com/collection_editor/create/",
	}
	if got := l.EditorURL(creatordashboard.EditorExploration, "abc"); got != "https://editor.example.com/create/abc" {
		t.Errorf("exploration: %q", got)
	}
	if got := l.EditorURL(creatordashboard.EditorCollection, "abc"); got != "https://editor.example.com/collection_editor/create/abc" {
		t.Errorf("collection: %q", got)
	}
	if got := l.EditorURL("story", "abc"); got != "" {
		t.Errorf("unknown kind: %q", got)
	}
}
