// internal/app/system/auth/sessions.go
package auth

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// sessionKeyProfile is the session value that remembers which audience
// profile the visitor last used, so a returning visitor lands on the
// same preset.
const sessionKeyProfile = "profile"

// SessionManager encapsulates the cookie session store and configuration.
// Use NewSessionManager to create an instance.
type SessionManager struct {
	store  *sessions.CookieStore
	logger *zap.Logger
	name   string
}

// SessionConfigError is returned when session configuration is invalid.
type SessionConfigError struct {
	Message string
}

func (e *SessionConfigError) Error() string {
	return e.Message
}

// NewSessionManager creates a new SessionManager with the provided configuration.
//
// Parameters:
//   - sessionKey: signing key for cookies (must be ≥32 chars in production)
//   - name: session cookie name (defaults to "leadmagnet-session" if empty)
//   - domain: cookie domain (empty means current host)
//   - maxAge: session cookie lifetime (e.g., 30*24*time.Hour)
//   - secure: if true, cookies are Secure (for HTTPS production)
//   - logger: zap logger for session error logging
//
// Returns an error if sessionKey is empty or too weak for production mode.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, &SessionConfigError{Message: "session key is empty; provide ≥32 random chars"}
	}

	isWeak := len(sessionKey) < 32

	if secure {
		// In production mode, require a strong key - fail startup if weak
		if isWeak {
			return nil, &SessionConfigError{
				Message: "session key is too weak for production; provide ≥32 random chars",
			}
		}
	} else if isWeak {
		// In dev mode, warn but allow weak keys
		logger.Warn("session key is weak; 32+ random chars required in production",
			zap.Int("length", len(sessionKey)))
	}

	if name == "" {
		name = "leadmagnet-session"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		// SameSite=Lax allows cookies on top-level navigations (like a
		// shared calculator link) while blocking cross-site POST requests.
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("session manager initialized",
		zap.Bool("secure", secure),
		zap.String("name", name),
		zap.String("domain", domain))

	return &SessionManager{
		store:  store,
		logger: logger,
		name:   name,
	}, nil
}

// SessionName returns the configured session cookie name.
func (sm *SessionManager) SessionName() string {
	return sm.name
}

// GetSession retrieves the session for the request.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return sm.store.Get(r, sm.name)
}

// RememberedProfile returns the profile slug stored in the visitor's
// session, or "" if none is remembered (or the cookie is invalid).
func (sm *SessionManager) RememberedProfile(r *http.Request) string {
	sess, err := sm.GetSession(r)
	if err != nil {
		// A bad or stale cookie is not worth more than a debug line.
		sm.logger.Debug("failed to decode session", zap.Error(err))
		return ""
	}
	return getString(sess, sessionKeyProfile)
}

// RememberProfile stores the profile slug in the visitor's session.
func (sm *SessionManager) RememberProfile(w http.ResponseWriter, r *http.Request, slug string) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		// Overwrite a bad cookie with a fresh session.
		sess, _ = sm.store.New(r, sm.name)
	}
	sess.Values[sessionKeyProfile] = slug
	return sess.Save(r, w)
}

// getString reads a string value from the session, tolerating missing or
// differently typed values.
func getString(s *sessions.Session, key string) string {
	if s == nil {
		return ""
	}
	if v, ok := s.Values[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}
