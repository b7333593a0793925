package errors_test

import (
	"bytes"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/creatorhub/internal/app/features/errors"
	"github.com/dalemusser/creatorhub/internal/app/resources"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHTMXLogBadRequest(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	errLog := uierrors.NewErrorLogger(zap.New(core))

	req := httptest.NewRequest("POST", "/creator-dashboard/sort/bogus", nil)
	rec := httptest.NewRecorder()
	errLog.HTMXLogBadRequest(rec, req, "unknown sort key", nil, "Unknown sort option.")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unknown sort option.") {
		t.Errorf("body: got %q", rec.Body.String())
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "unknown sort key" {
		t.Errorf("log message: got %q", entry.Message)
	}
	if entry.ContextMap()["path"] != "/creator-dashboard/sort/bogus" {
		t.Errorf("log path field: got %v", entry.ContextMap()["path"])
	}
}

func TestRenderError_HTMX_IsPlainText(t *testing.T) {
	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	uierrors.RenderError(rec, req, http.StatusNotFound, "Not here.", "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "Not here." {
		t.Errorf("body: got %q", rec.Body.String())
	}
}

func TestErrorPageTemplate(t *testing.T) {
	tmpl := template.Must(template.ParseFS(resources.FS, "templates/*.gohtml"))
	tmpl = template.Must(tmpl.ParseFS(uierrors.FS, "templates/*.gohtml"))

	data := map[string]any{
		"Title":      "Not Found",
		"SiteName":   "Creator Hub",
		"LoginURL":   "/login",
		"CSRFToken":  "tok",
		"IsLoggedIn": false,
		"Status":     404,
		"Message":    "We couldn't find that page.",
		"BackURL":    "/",
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "error_page", data); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"404", "Not Found", "find that page", "Sign in"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}
