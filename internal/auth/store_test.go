package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrassist/internal/auth"
	"github.com/dmitrymomot/hrassist/internal/web"
	"github.com/dmitrymomot/hrassist/pkg/backend"
	"github.com/dmitrymomot/hrassist/pkg/session"
)

// webContext aliases web.Context so embedding it does not create a field
// named Context that collides with the interface's Context() method.
type webContext = web.Context

// fakeContext implements the slice of web.Context the auth store touches.
// Everything else panics via the embedded nil interface.
type fakeContext struct {
	webContext
	values          map[string]any
	authErr         error
	authenticatedAs string
	destroyed       bool
}

func newFakeContext() *fakeContext {
	return &fakeContext{values: make(map[string]any)}
}

func (c *fakeContext) Context() context.Context { return context.Background() }

func (c *fakeContext) SessionValue(key string) (any, error) {
	v, ok := c.values[key]
	if !ok {
		return nil, session.ErrNotFound
	}
	return v, nil
}

func (c *fakeContext) SetSessionValue(key string, val any) error {
	c.values[key] = val
	return nil
}

func (c *fakeContext) DeleteSessionValue(key string) error {
	delete(c.values, key)
	return nil
}

func (c *fakeContext) AuthenticateSession(userID string) error {
	if c.authErr != nil {
		return c.authErr
	}
	c.authenticatedAs = userID
	return nil
}

func (c *fakeContext) DestroySession() error {
	c.destroyed = true
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setCookies(t *testing.T, c *fakeContext, cookies map[string]string) {
	t.Helper()
	raw, err := json.Marshal(cookies)
	require.NoError(t, err)
	c.values["backend_cookies"] = string(raw)
}

func TestStore_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("no cookies resolves anonymous without a backend call", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer srv.Close()

		store := auth.NewStore(backend.New(srv.URL), discard())
		state := store.Resolve(newFakeContext())

		assert.Equal(t, auth.DecisionRedirect, auth.Decide(state))
		assert.Zero(t, calls.Load())
	})

	t.Run("cached user short-circuits the backend", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer srv.Close()

		c := newFakeContext()
		c.values["auth_user"] = `{"id":"u1","email":"jane@acme.com","name":"Jane"}`

		store := auth.NewStore(backend.New(srv.URL), discard())
		state := store.Resolve(c)

		require.True(t, state.IsAuthenticated())
		assert.Equal(t, "Jane", state.User.Name)
		assert.Zero(t, calls.Load())
	})

	t.Run("valid cookies resolve and cache the user", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/me", r.URL.Path)
			cookie, err := r.Cookie("session")
			require.NoError(t, err)
			require.Equal(t, "tok-1", cookie.Value)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u1","email":"jane@acme.com","name":"Jane"}`))
		}))
		defer srv.Close()

		c := newFakeContext()
		setCookies(t, c, map[string]string{"session": "tok-1"})

		store := auth.NewStore(backend.New(srv.URL), discard())
		state := store.Resolve(c)

		require.True(t, state.IsAuthenticated())
		assert.Contains(t, c.values["auth_user"], `"id":"u1"`, "user cached for later requests")
	})

	t.Run("rejected cookies clear session state", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
		}))
		defer srv.Close()

		c := newFakeContext()
		setCookies(t, c, map[string]string{"session": "stale"})

		store := auth.NewStore(backend.New(srv.URL), discard())
		state := store.Resolve(c)

		assert.False(t, state.IsAuthenticated())
		assert.NotContains(t, c.values, "backend_cookies")
		assert.NotContains(t, c.values, "auth_user")
	})

	t.Run("corrupt cookie jar degrades to anonymous", func(t *testing.T) {
		t.Parallel()

		c := newFakeContext()
		c.values["backend_cookies"] = "{not json"

		store := auth.NewStore(backend.New("http://backend.invalid"), discard())
		assert.False(t, store.Resolve(c).IsAuthenticated())
	})
}

func TestStore_Login(t *testing.T) {
	t.Parallel()

	t.Run("success rotates the session and captures cookies", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/login", r.URL.Path)
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok-fresh"})
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u1","email":"jane@acme.com","name":"Jane"}`))
		}))
		defer srv.Close()

		c := newFakeContext()
		store := auth.NewStore(backend.New(srv.URL), discard())
		res := store.Login(c, backend.LoginParams{Email: "jane@acme.com", Password: "secret"})

		require.True(t, res.OK())
		assert.Equal(t, "u1", c.authenticatedAs)
		assert.Contains(t, c.values["backend_cookies"], "tok-fresh")
		assert.Contains(t, c.values["auth_user"], `"id":"u1"`)
	})

	t.Run("backend rejection passes through", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
		}))
		defer srv.Close()

		c := newFakeContext()
		store := auth.NewStore(backend.New(srv.URL), discard())
		res := store.Login(c, backend.LoginParams{})

		require.False(t, res.OK())
		assert.Equal(t, "Invalid credentials", res.Error)
		assert.Empty(t, c.authenticatedAs)
		assert.NotContains(t, c.values, "auth_user")
	})

	t.Run("session failure masks the signed-in state", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u1"}`))
		}))
		defer srv.Close()

		c := newFakeContext()
		c.authErr = errors.New("store unavailable")

		store := auth.NewStore(backend.New(srv.URL), discard())
		res := store.Login(c, backend.LoginParams{})

		require.False(t, res.OK())
		assert.Equal(t, "Something went wrong. Please try again.", res.Error)
		assert.NotContains(t, c.values, "auth_user", "no partial sign-in state")
	})
}

func TestStore_Logout(t *testing.T) {
	t.Parallel()

	t.Run("destroys the local session and notifies the backend", func(t *testing.T) {
		t.Parallel()

		var loggedOut atomic.Bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/logout", r.URL.Path)
			loggedOut.Store(true)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		}))
		defer srv.Close()

		c := newFakeContext()
		setCookies(t, c, map[string]string{"session": "tok-1"})

		store := auth.NewStore(backend.New(srv.URL), discard())
		store.Logout(c)

		assert.True(t, c.destroyed)
		assert.True(t, loggedOut.Load())
	})

	t.Run("local sign-out survives a backend failure", func(t *testing.T) {
		t.Parallel()

		c := newFakeContext()
		setCookies(t, c, map[string]string{"session": "tok-1"})

		store := auth.NewStore(backend.New("http://backend.invalid"), discard())
		store.Logout(c)

		assert.True(t, c.destroyed)
	})
}
