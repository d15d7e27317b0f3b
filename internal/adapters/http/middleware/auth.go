package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"localserve/internal/domain/account"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const (
	userContextKey  contextKey = "user_session"
	adminContextKey contextKey = "admin_session"
)

// Cookie names, one per auth scope. A customer session can never satisfy
// the admin gate because the scopes read different cookies and kinds.
const (
	UserCookieName  = "localserve_session"
	AdminCookieName = "localserve_admin_session"
)

// SecureCookies toggles the Secure flag on session cookies. Set true in
// production.
var SecureCookies = false

// Session represents an authenticated session for one scope.
type Session struct {
	AccountID  int64
	Identifier string
	Kind       string // account.KindUser or account.KindAdmin
	CreatedAt  time.Time
}

// SessionStore is an in-memory session store shared by both scopes; tokens
// are opaque and carry their scope in the stored session.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]Session)}
}

// Create stores a new session and returns the token.
// PRE: accountID is valid, kind is a known account kind
// POST: Session is stored, token is returned
func (ss *SessionStore) Create(accountID int64, identifier, kind string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[token] = Session{
		AccountID:  accountID,
		Identifier: identifier,
		Kind:       kind,
		CreatedAt:  time.Now(),
	}
	return token, nil
}

// Get retrieves a session by token, requiring the given kind.
// POST: Returns session if valid, unexpired and kind-matched
func (ss *SessionStore) Get(token, kind string) (Session, bool) {
	ss.mu.RLock()
	session, ok := ss.sessions[token]
	ss.mu.RUnlock()
	if !ok || session.Kind != kind {
		return Session{}, false
	}
	// Sessions expire after 24 hours
	if time.Since(session.CreatedAt) > 24*time.Hour {
		ss.Delete(token)
		return Session{}, false
	}
	return session, true
}

// Delete removes a session by token.
func (ss *SessionStore) Delete(token string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, token)
}

// Auth returns middleware that resolves both scope cookies into context
// sessions. It does NOT block unauthenticated requests — RequireAdmin does.
func Auth(sessions *SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if cookie, err := r.Cookie(UserCookieName); err == nil && cookie.Value != "" {
				if session, ok := sessions.Get(cookie.Value, account.KindUser); ok {
					ctx = context.WithValue(ctx, userContextKey, session)
				}
			}
			if cookie, err := r.Cookie(AdminCookieName); err == nil && cookie.Value != "" {
				if session, ok := sessions.Get(cookie.Value, account.KindAdmin); ok {
					ctx = context.WithValue(ctx, adminContextKey, session)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests without a valid admin session, redirecting
// to the admin login page.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetAdminSession(r.Context()); !ok {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserSession extracts the customer session from the request context.
func GetUserSession(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(userContextKey).(Session)
	return session, ok
}

// GetAdminSession extracts the admin session from the request context.
func GetAdminSession(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(adminContextKey).(Session)
	return session, ok
}

// ContextWithSession returns a context with the given session set in its
// scope. Intended for use in tests.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	key := userContextKey
	if sess.Kind == account.KindAdmin {
		key = adminContextKey
	}
	return context.WithValue(ctx, key, sess)
}

// SetSessionCookie sets the scope cookie for a session token.
func SetSessionCookie(w http.ResponseWriter, token, kind string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName(kind),
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   86400, // 24 hours
	})
}

// ClearSessionCookie removes the scope cookie.
func ClearSessionCookie(w http.ResponseWriter, kind string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName(kind),
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

func cookieName(kind string) string {
	if kind == account.KindAdmin {
		return AdminCookieName
	}
	return UserCookieName
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
