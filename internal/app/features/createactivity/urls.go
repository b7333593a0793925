package createactivity

import (
	"net/url"
)

// httpPathEscape reduces an absolute HX-Current-URL to an escaped local
// path, or returns the escaped fallback.
func httpPathEscape(current, fallback string) string {
	if current != "" {
		if u, err := url.Parse(current); err == nil && u.Path != "" {
			p := u.Path
			if u.RawQuery != "" {
				p += "?" + u.RawQuery
			}
			return url.QueryEscape(p)
		}
	}
	return url.QueryEscape(fallback)
}
