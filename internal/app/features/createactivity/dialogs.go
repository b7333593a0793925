package createactivity

import (
	"context"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// EditorDialogs builds modals whose choices link into the editor service.
type EditorDialogs struct {
	EditorBaseURL string
}

func (d EditorDialogs) categoryOptions(action string, categories []string) []CategoryOption {
	out := make([]CategoryOption, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		out = append(out, CategoryOption{
			Name: c,
			URL:  d.editorURL(action, url.Values{"category": {c}}),
		})
	}
	return out
}

func (d EditorDialogs) editorURL(action string, q url.Values) string {
	base := strings.TrimRight(d.EditorBaseURL, "/")
	u := base + "/" + action
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// OpenCreateModal returns the "start from scratch" modal.
func (d EditorDialogs) OpenCreateModal(_ context.Context, categories []string) (Modal, error) {
	return Modal{
		Variant:     VariantCreate,
		Title:       "Create a new exploration",
		Description: "Pick a category to open a blank exploration in the editor.",
		Categories:  d.categoryOptions("create", categories),
		SubmitURL:   d.editorURL("create", nil),
	}, nil
}

// OpenUploadModal returns the "upload an existing file" modal.
func (d EditorDialogs) OpenUploadModal(_ context.Context, categories []string) (Modal, error) {
	return Modal{
		Variant:     VariantUpload,
		Title:       "Upload an exploration",
		Description: "Pick a category, then choose the exploration file to import.",
		Categories:  d.categoryOptions("upload", categories),
		SubmitURL:   d.editorURL("upload", nil),
	}, nil
}

// ParseCategories splits a comma-separated config value, dropping blanks
// and duplicates while keeping order.
func ParseCategories(raw string) []string {
	seen := map[string]bool{}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		c := strings.TrimSpace(part)
		if c == "" || seen[text.Fold(c)] {
			continue
		}
		seen[text.Fold(c)] = true
		out = append(out, c)
	}
	return out
}
