// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"
	"time"

	createactivityfeature "github.com/dalemusser/creatorhub/internal/app/features/createactivity"
	creatordashboardfeature "github.com/dalemusser/creatorhub/internal/app/features/creatordashboard"
	errorsfeature "github.com/dalemusser/creatorhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/creatorhub/internal/app/features/health"
	"github.com/dalemusser/creatorhub/internal/app/system/auth"
	"github.com/dalemusser/creatorhub/internal/app/system/dashdata"
	"github.com/dalemusser/creatorhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root router: session and CSRF middleware,
// then the dashboard, the creation endpoints, health and static assets.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.SessionMaxAge, secure, appCfg.LoginURL, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Dev mode reloads templates on every render.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(csrfMiddleware(appCfg.SessionKey, secure))
	r.Use(sessionMgr.LoadSessionUser)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, creatordashboardfeature.BasePath, http.StatusSeeOther)
	})

	dashHandler := creatordashboardfeature.NewHandler(
		dashdata.New(deps.MongoDatabase, logger),
		creatordashboardfeature.SessionState{Sessions: sessionMgr},
		creatordashboardfeature.EditorLinks{
			ExplorationBaseURL: appCfg.EditorBaseURL,
			CollectionBaseURL:  appCfg.CollectionEditorBaseURL,
		},
		errLog, appCfg.DefaultTimezone, logger)
	r.Mount(creatordashboardfeature.BasePath, creatordashboardfeature.Routes(dashHandler, sessionMgr))

	trigger := createactivityfeature.NewTrigger(
		createactivityfeature.EditorDialogs{EditorBaseURL: appCfg.EditorBaseURL},
		deps.Analytics, nil, appCfg.CreationCategories, logger)
	createHandler := createactivityfeature.NewHandler(trigger, sessionMgr, errLog, logger)
	loginLimiter := ratelimit.New(appCfg.LoginRedirectLimit, time.Minute)
	r.Mount("/create", createactivityfeature.Routes(createHandler, ratelimit.Middleware(loginLimiter, logger)))

	r.NotFound(errorsfeature.NotFound)

	return r, nil
}

// csrfMiddleware protects the dashboard's POST routes. The token key is
// derived from the session key so one secret configures both. Outside
// production requests are marked plaintext so origin checks accept http.
func csrfMiddleware(sessionKey string, secure bool) func(http.Handler) http.Handler {
	key := sha256.Sum256([]byte("creatorhub-csrf:" + sessionKey))
	protect := csrf.Protect(key[:],
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)
	if secure {
		return protect
	}
	return func(next http.Handler) http.Handler {
		h := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}
