// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix. Empty allows any safe URL.
	AllowedPrefix string

	// ExcludedSubpaths are rejected to avoid redirect loops back to
	// action endpoints.
	ExcludedSubpaths []string

	// Fallback is used when no valid return URL is present.
	Fallback string
}

// SafeBackURL reads "return" from the query string or form, rejects
// anything that is not a local path (open redirects), then applies the
// prefix and exclusion rules.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}
	if ret == "" {
		return opts.Fallback
	}
	if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
		return opts.Fallback
	}
	for _, excluded := range opts.ExcludedSubpaths {
		if strings.Contains(ret, excluded) {
			return opts.Fallback
		}
	}
	return ret
}

var (
	// LoginReturn is where a visitor lands after signing in from the
	// create button. Returning to /create itself would loop.
	LoginReturn = BackURLOptions{
		ExcludedSubpaths: []string{"/create/login"},
		Fallback:         "/creator-dashboard",
	}

	// DashboardReturn keeps non-HTMX dashboard actions inside the dashboard.
	DashboardReturn = BackURLOptions{
		AllowedPrefix:    "/creator-dashboard",
		ExcludedSubpaths: []string{"/sort/", "/tab/", "/view/", "/edit"},
		Fallback:         "/creator-dashboard",
	}
)
