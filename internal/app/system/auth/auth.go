// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Session value keys. The sign-in service writes the same keys into the
// shared cookie.
const (
	userIDKey   = "user_id"
	userNameKey = "user_name"
	loginIDKey  = "login_id"
)

// SessionUser is what we read from the session and inject into r.Context().
type SessionUser struct {
	ID      string
	Name    string
	LoginID string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user and a "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects u into the request context, bypassing the session.
// Used by handler tests.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// SessionManager owns the cookie store and the sign-in middleware.
type SessionManager struct {
	store    *sessions.CookieStore
	name     string
	loginURL string
	log      *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager.
//
// In production (secure=true) cookies are Secure + SameSite=None so the
// sign-in service on a sibling domain can share them. Over plain http in
// development use secure=false.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, loginURL string, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide 32+ random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		return nil, fmt.Errorf("session name is empty")
	}
	if loginURL == "" {
		loginURL = "/login"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		store.Options.SameSite = http.SameSiteNoneMode
	}

	return &SessionManager{
		store:    store,
		name:     name,
		loginURL: loginURL,
		log:      logger,
	}, nil
}

// LoginURL is where visitors are sent to sign in.
func (sm *SessionManager) LoginURL() string {
	return sm.loginURL
}

// LoginURLWithReturn appends a return parameter to the login URL.
func (sm *SessionManager) LoginURLWithReturn(ret string) string {
	if ret == "" {
		return sm.loginURL
	}
	sep := "?"
	if strings.Contains(sm.loginURL, "?") {
		sep = "&"
	}
	return sm.loginURL + sep + "return=" + url.QueryEscape(ret)
}

// Session returns the request's session. A cookie that fails to decode
// (rotated key, tampering) yields a fresh session instead of an error.
func (sm *SessionManager) Session(r *http.Request) *sessions.Session {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			sm.log.Debug("discarding undecodable session cookie", zap.Error(err))
		} else {
			sm.log.Warn("session load failed", zap.Error(err))
		}
	}
	return sess
}

// SignIn stores u in the session. The sign-in service normally does this;
// it is exposed for local development and tests.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess := sm.Session(r)
	sess.Values[userIDKey] = u.ID
	sess.Values[userNameKey] = u.Name
	sess.Values[loginIDKey] = u.LoginID
	return sess.Save(r, w)
}

// LoadSessionUser injects the user into context if they are signed in.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := sm.Session(r)
		if id := getString(sess, userIDKey); id != "" {
			r = withUser(r, &SessionUser{
				ID:      id,
				Name:    getString(sess, userNameKey),
				LoginID: getString(sess, loginIDKey),
			})
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// If not signed in:
//   - HTMX: HX-Redirect to the login URL with a return parameter
//   - HTML: 303 redirect to the same
//   - API:  401 Unauthorized
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		dest := sm.LoginURLWithReturn(r.URL.RequestURI())

		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", dest)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if wantsHTML(r) {
			http.Redirect(w, r, dest, http.StatusSeeOther)
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func getString(s *sessions.Session, key string) string {
	if s == nil {
		return ""
	}
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
