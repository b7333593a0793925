package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/creatorhub/internal/app/system/htmlsanitize"
)

func TestPlainText_Empty(t *testing.T) {
	if got := htmlsanitize.PlainText(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestPlainText_Unchanged(t *testing.T) {
	if got := htmlsanitize.PlainText("Fractions 101"); got != "Fractions 101" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestPlainText_TrimsWhitespace(t *testing.T) {
	if got := htmlsanitize.PlainText("  Algebra \n"); got != "Algebra" {
		t.Errorf("got %q, want %q", got, "Algebra")
	}
}

func TestPlainText_StripsTags(t *testing.T) {
	got := htmlsanitize.PlainText("<b>Bold</b> <em>move</em>")
	if got != "Bold move" {
		t.Errorf("got %q, want %q", got, "Bold move")
	}
}

func TestPlainText_RemovesScript(t *testing.T) {
	got := htmlsanitize.PlainText("Hello<script>alert('xss')</script>")
	if got != "Hello" {
		t.Errorf("got %q, want %q", got, "Hello")
	}
}

func TestPlainText_DecodesEntities(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"<i>Tom</i> &amp; Jerry", "Tom & Jerry"},
		{"Tom & Jerry", "Tom & Jerry"},
	}
	for _, tc := range tests {
		if got := htmlsanitize.PlainText(tc.in); got != tc.want {
			t.Errorf("PlainText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsPlainText(t *testing.T) {
	if !htmlsanitize.IsPlainText("3 > 2") {
		t.Error("expected text with only '>' to be plain")
	}
	if htmlsanitize.IsPlainText("<p>x</p>") {
		t.Error("expected markup not to be plain")
	}
}
