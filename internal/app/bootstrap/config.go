// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/creatorhub/internal/app/features/createactivity"
	"github.com/dalemusser/creatorhub/internal/app/system/analytics"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// EnvPrefix is the environment variable prefix for app keys
// (CREATORHUB_MONGO_URI, CREATORHUB_LOGIN_URL, ...).
const EnvPrefix = "CREATORHUB"

const defaultCategories = "Algebra,Architecture,Art,Biology,Chemistry,Computing,Economics,Education,English,Environment,Geography,Government,History,Languages,Mathematics,Medicine,Music,Philosophy,Physics,Programming,Psychology,Puzzles,Reading,Religion,Sport,Statistics,Welcome"

// appConfigKeys are loaded from config files, CREATORHUB_* environment
// variables and command-line flags, in increasing precedence.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "creatorhub", Desc: "MongoDB database name"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must match the sign-in service)"},
	{Name: "session_name", Default: "creatorhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie lifetime"},

	{Name: "login_url", Default: "/login", Desc: "Sign-in page for visitors"},
	{Name: "editor_base_url", Default: "/create", Desc: "Exploration editor base URL"},
	{Name: "collection_editor_base_url", Default: "/collection_editor/create", Desc: "Collection editor base URL"},
	{Name: "creation_categories", Default: defaultCategories, Desc: "Comma-separated categories offered when creating an exploration"},

	{Name: "default_timezone", Default: "UTC", Desc: "IANA zone for dates when the browser sends none"},
	{Name: "analytics_log", Default: "all", Desc: "Analytics event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "login_redirect_limit", Default: 30, Desc: "Max /create/login requests per client IP per minute"},
	{Name: "stats_snapshot_interval", Default: "1h", Desc: "How often weekly stats snapshots are refreshed"},
}

// LoadConfig loads WAFFLE core config and creatorhub's app config.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),

		LoginURL:                appValues.String("login_url"),
		EditorBaseURL:           appValues.String("editor_base_url"),
		CollectionEditorBaseURL: appValues.String("collection_editor_base_url"),
		CreationCategories:      createactivity.ParseCategories(appValues.String("creation_categories")),

		DefaultTimezone:       appValues.String("default_timezone"),
		AnalyticsLog:          appValues.String("analytics_log"),
		LoginRedirectLimit:    appValues.Int("login_redirect_limit"),
		StatsSnapshotInterval: appValues.Duration("stats_snapshot_interval", time.Hour),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects configuration that would only fail later, at
// connect time or on the first request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database is required")
	}
	if !analytics.ValidMode(appCfg.AnalyticsLog) {
		return fmt.Errorf("analytics_log must be all, db, log or off; got %q", appCfg.AnalyticsLog)
	}
	if appCfg.LoginRedirectLimit < 1 {
		return fmt.Errorf("login_redirect_limit must be at least 1; got %d", appCfg.LoginRedirectLimit)
	}
	if appCfg.StatsSnapshotInterval < time.Minute {
		return fmt.Errorf("stats_snapshot_interval must be at least 1m; got %s", appCfg.StatsSnapshotInterval)
	}
	if len(appCfg.CreationCategories) == 0 {
		return fmt.Errorf("creation_categories must list at least one category")
	}
	for name, u := range map[string]string{
		"login_url":                  appCfg.LoginURL,
		"editor_base_url":            appCfg.EditorBaseURL,
		"collection_editor_base_url": appCfg.CollectionEditorBaseURL,
	} {
		if !validLinkTarget(u) {
			return fmt.Errorf("%s must be a site path or an http(s) URL; got %q", name, u)
		}
	}
	if _, err := time.LoadLocation(appCfg.DefaultTimezone); err != nil {
		return fmt.Errorf("default_timezone %q is not a known IANA zone", appCfg.DefaultTimezone)
	}
	return nil
}

// validLinkTarget accepts a site path or an absolute http(s) URL.
func validLinkTarget(u string) bool {
	if strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") {
		return true
	}
	return urlutil.IsValidAbsHTTPURL(u)
}
