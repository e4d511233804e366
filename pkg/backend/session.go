package backend

import (
	"maps"
	"net/http"
	"time"
)

// Session holds the backend's auth cookies for one browser session.
//
// The web layer owns the Session: it restores one from its own session store
// before calling the client and persists it again when Dirty reports changes.
// Session is not safe for concurrent use; each browser session owns its own
// instance and requests within a session are serialized by the caller.
type Session struct {
	cookies map[string]string
	dirty   bool
}

// NewSession creates an empty backend session.
func NewSession() *Session {
	return &Session{cookies: make(map[string]string)}
}

// RestoreSession rebuilds a session from previously persisted cookie pairs.
func RestoreSession(cookies map[string]string) *Session {
	s := NewSession()
	maps.Copy(s.cookies, cookies)
	return s
}

// Cookies returns a copy of the cookie pairs for persistence.
func (s *Session) Cookies() map[string]string {
	out := make(map[string]string, len(s.cookies))
	maps.Copy(out, s.cookies)
	return out
}

// Empty reports whether the session holds no backend cookies.
// An empty session cannot be authenticated.
func (s *Session) Empty() bool {
	return len(s.cookies) == 0
}

// Dirty reports whether the cookie set changed since the last ClearDirty.
func (s *Session) Dirty() bool {
	return s.dirty
}

// ClearDirty marks the session as persisted.
func (s *Session) ClearDirty() {
	s.dirty = false
}

// Reset drops all backend cookies. Used by logout, which clears local state
// regardless of whether the backend call succeeds.
func (s *Session) Reset() {
	if len(s.cookies) == 0 {
		return
	}
	s.cookies = make(map[string]string)
	s.dirty = true
}

// absorb folds Set-Cookie headers from a backend response into the session.
// Expired or max-age<0 cookies are deletions.
func (s *Session) absorb(cookies []*http.Cookie) {
	for _, c := range cookies {
		if c.Name == "" {
			continue
		}
		expired := c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now()))
		if expired {
			if _, ok := s.cookies[c.Name]; ok {
				delete(s.cookies, c.Name)
				s.dirty = true
			}
			continue
		}
		if prev, ok := s.cookies[c.Name]; !ok || prev != c.Value {
			s.cookies[c.Name] = c.Value
			s.dirty = true
		}
	}
}
