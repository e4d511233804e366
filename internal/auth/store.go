package auth

import (
	"encoding/json"
	"log/slog"

	"github.com/dmitrymomot/hrassist/internal/web"
	"github.com/dmitrymomot/hrassist/pkg/backend"
)

// Session value keys. Values survive a JSON round-trip through the session
// store, so both entries are stored as strings.
const (
	sessionKeyUser    = "auth_user"
	sessionKeyCookies = "backend_cookies"
)

// Store resolves and mutates the authentication state of a browser session.
// The assistant backend owns credentials and issues its auth cookie; Store
// captures that cookie per browser session and replays it on later calls.
type Store struct {
	client *backend.Client
	logger *slog.Logger
}

// NewStore creates a Store using the given backend client.
func NewStore(client *backend.Client, logger *slog.Logger) *Store {
	return &Store{client: client, logger: logger}
}

// BackendSession reconstructs the backend cookie jar from the web session.
// Always returns a usable (possibly empty) session.
func (s *Store) BackendSession(c web.Context) *backend.Session {
	raw, err := c.SessionValue(sessionKeyCookies)
	if err != nil {
		return backend.NewSession()
	}
	str, ok := raw.(string)
	if !ok || str == "" {
		return backend.NewSession()
	}
	var cookies map[string]string
	if err := json.Unmarshal([]byte(str), &cookies); err != nil {
		return backend.NewSession()
	}
	return backend.RestoreSession(cookies)
}

// persist writes the backend cookie jar and the cached user back to the
// web session. Either argument may be nil to clear its entry.
func (s *Store) persist(c web.Context, sess *backend.Session, user *backend.User) {
	if sess == nil || sess.Empty() {
		if err := c.DeleteSessionValue(sessionKeyCookies); err != nil {
			s.logger.WarnContext(c.Context(), "failed to clear backend cookies", slog.Any("error", err))
		}
	} else {
		raw, err := json.Marshal(sess.Cookies())
		if err == nil {
			if err := c.SetSessionValue(sessionKeyCookies, string(raw)); err != nil {
				s.logger.WarnContext(c.Context(), "failed to persist backend cookies", slog.Any("error", err))
			}
		}
		sess.ClearDirty()
	}

	if user == nil {
		if err := c.DeleteSessionValue(sessionKeyUser); err != nil {
			s.logger.WarnContext(c.Context(), "failed to clear cached user", slog.Any("error", err))
		}
	} else {
		raw, err := json.Marshal(user)
		if err == nil {
			if err := c.SetSessionValue(sessionKeyUser, string(raw)); err != nil {
				s.logger.WarnContext(c.Context(), "failed to cache user", slog.Any("error", err))
			}
		}
	}
}

func (s *Store) cachedUser(c web.Context) *backend.User {
	raw, err := c.SessionValue(sessionKeyUser)
	if err != nil {
		return nil
	}
	str, ok := raw.(string)
	if !ok || str == "" {
		return nil
	}
	var u backend.User
	if err := json.Unmarshal([]byte(str), &u); err != nil {
		return nil
	}
	return &u
}

// Resolve determines the authentication state for the request.
// A cached user short-circuits the backend call. Without a cache but with
// backend cookies present, the backend is asked who the cookies belong to;
// a rejection clears the stale cookies and resolves anonymous.
func (s *Store) Resolve(c web.Context) State {
	if u := s.cachedUser(c); u != nil {
		return Authenticated(u)
	}

	sess := s.BackendSession(c)
	if sess.Empty() {
		return Anonymous()
	}

	res := s.client.CurrentUser(c.Context(), sess)
	if !res.OK() {
		s.logger.InfoContext(c.Context(), "backend session no longer valid", slog.String("reason", res.Error))
		s.persist(c, nil, nil)
		return Anonymous()
	}

	s.persist(c, sess, res.Data)
	return Authenticated(res.Data)
}

// Login authenticates against the backend. On success the app session is
// re-keyed (token rotation), the backend cookie jar is captured, and the
// user is cached.
func (s *Store) Login(c web.Context, params backend.LoginParams) backend.Result[backend.User] {
	sess := backend.NewSession()
	res := s.client.Login(c.Context(), sess, params)
	if !res.OK() {
		return res
	}

	if err := c.AuthenticateSession(res.Data.ID); err != nil {
		s.logger.ErrorContext(c.Context(), "failed to authenticate session", slog.Any("error", err))
		return backend.Fail[backend.User]("Something went wrong. Please try again.")
	}
	s.persist(c, sess, res.Data)
	return res
}

// Register creates a backend account. The visitor still signs in afterwards;
// no session state changes here.
func (s *Store) Register(c web.Context, params backend.RegisterParams) backend.Result[backend.User] {
	return s.client.Register(c.Context(), backend.NewSession(), params)
}

// Logout signs the visitor out locally first, then tells the backend.
// The local session is gone regardless of whether the backend call
// succeeds; a failure is logged and otherwise ignored.
func (s *Store) Logout(c web.Context) {
	sess := s.BackendSession(c)

	if err := c.DestroySession(); err != nil {
		s.logger.WarnContext(c.Context(), "failed to destroy session", slog.Any("error", err))
	}

	if sess.Empty() {
		return
	}
	if res := s.client.Logout(c.Context(), sess); !res.OK() {
		s.logger.WarnContext(c.Context(), "backend logout failed", slog.String("reason", res.Error))
	}
}
