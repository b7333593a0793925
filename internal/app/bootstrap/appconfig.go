// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds creatorhub's own configuration. WAFFLE's CoreConfig
// covers ports, TLS, logging and CORS; everything specific to the
// dashboard lives here and is passed to every lifecycle hook.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // e.g. mongodb://localhost:27017
	MongoDatabase string

	// Session cookie shared with the sign-in service
	SessionKey    string
	SessionName   string
	SessionDomain string // blank means current host
	SessionMaxAge time.Duration

	// LoginURL is the sign-in page visitors are sent to.
	LoginURL string

	// Editor endpoints the dashboard and the creation modal link into.
	EditorBaseURL           string
	CollectionEditorBaseURL string

	// CreationCategories are offered by the creation modal, in order.
	CreationCategories []string

	// DefaultTimezone is used for dates when the browser has not reported one.
	DefaultTimezone string

	// AnalyticsLog is where analytics events go: all, db, log or off.
	AnalyticsLog string

	// LoginRedirectLimit caps /create/login hits per client IP per minute.
	LoginRedirectLimit int

	// StatsSnapshotInterval is how often the weekly stats snapshot is refreshed.
	StatsSnapshotInterval time.Duration
}
