package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"skyline/internal/tracking"
)

const sessionCookieName = "skyline_session"

type sessionContextKey struct{}

// SessionFlags is the per-browser key/value store handed to the visitor
// tracker. Flags live as long as the session entry itself.
type SessionFlags struct {
	mu       sync.RWMutex
	flags    map[string]bool
	lastSeen time.Time
}

func (s *SessionFlags) Get(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[key]
}

func (s *SessionFlags) Set(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = true
}

// SessionManager issues cookie-identified sessions backed by in-memory flag
// sets. Stale sessions are pruned lazily when new ones are created.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*SessionFlags
	ttl      time.Duration
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*SessionFlags),
		ttl:      48 * time.Hour,
	}
}

func (m *SessionManager) lookup(id string) *SessionFlags {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil
	}
	sess.lastSeen = time.Now()
	return sess
}

func (m *SessionManager) create(id string) *SessionFlags {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	sess := &SessionFlags{flags: make(map[string]bool), lastSeen: time.Now()}
	m.sessions[id] = sess
	return sess
}

func (m *SessionManager) pruneLocked() {
	if len(m.sessions) < 10000 {
		return
	}
	cutoff := time.Now().Add(-m.ttl)
	for id, sess := range m.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

// Session attaches a cookie-identified SessionFlags to the request context,
// minting a new session cookie when none is present.
func Session(m *SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *SessionFlags
			if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				sess = m.lookup(cookie.Value)
			}
			if sess == nil {
				id := uuid.NewString()
				sess = m.create(id)
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := context.WithValue(r.Context(), sessionContextKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the request's session store, or nil when the
// session middleware did not run. Callers must tolerate nil.
func SessionFromContext(ctx context.Context) tracking.SessionStore {
	if sess, ok := ctx.Value(sessionContextKey{}).(*SessionFlags); ok {
		return sess
	}
	return nil
}
