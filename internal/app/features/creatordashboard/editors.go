package creatordashboard

import (
	"net/url"
	"strings"
)

// EditorKind names which editor an item opens in.
type EditorKind string

const (
	EditorExploration EditorKind = "exploration"
	EditorCollection  EditorKind = "collection"
)

// EditorRouter maps an item to the URL of its editor.
type EditorRouter interface {
	EditorURL(kind EditorKind, id string) string
}

// EditorLinks builds editor URLs from configured base URLs.
type EditorLinks struct {
	ExplorationBaseURL string
	CollectionBaseURL  string
}

// EditorURL returns <base>/<id>, or "" for an unknown kind.
func (l EditorLinks) EditorURL(kind EditorKind, id string) string {
	var base string
	switch kind {
	case EditorExploration:
		base = l.ExplorationBaseURL
	case EditorCollection:
		base = l.CollectionBaseURL
	default:
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(id)
}
