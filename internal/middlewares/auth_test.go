package middlewares_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrassist/internal/auth"
	"github.com/dmitrymomot/hrassist/internal/middlewares"
	"github.com/dmitrymomot/hrassist/internal/web"
	"github.com/dmitrymomot/hrassist/pkg/backend"
	"github.com/dmitrymomot/hrassist/pkg/session"
)

// webContext aliases web.Context so embedding it does not create a field
// named Context that collides with the interface's Context() method.
type webContext = web.Context

// guardContext implements the slice of web.Context the auth middlewares
// touch. Everything else panics via the embedded nil interface.
type guardContext struct {
	webContext
	values       map[any]any
	sessionVals  map[string]any
	headers      http.Header
	body         string
	redirectedTo string
	redirectCode int
	renderedWith web.Component
}

func newGuardContext() *guardContext {
	return &guardContext{
		values:      make(map[any]any),
		sessionVals: make(map[string]any),
		headers:     make(http.Header),
	}
}

func (c *guardContext) Context() context.Context { return context.Background() }

func (c *guardContext) Set(key, value any) { c.values[key] = value }

func (c *guardContext) Get(key any) any { return c.values[key] }

func (c *guardContext) SessionValue(key string) (any, error) {
	v, ok := c.sessionVals[key]
	if !ok {
		return nil, session.ErrNotFound
	}
	return v, nil
}

func (c *guardContext) SetSessionValue(key string, val any) error {
	c.sessionVals[key] = val
	return nil
}

func (c *guardContext) DeleteSessionValue(key string) error {
	delete(c.sessionVals, key)
	return nil
}

func (c *guardContext) SetHeader(name, value string) { c.headers.Set(name, value) }

func (c *guardContext) String(code int, s string) error {
	c.body = s
	return nil
}

func (c *guardContext) Redirect(code int, url string) error {
	c.redirectCode = code
	c.redirectedTo = url
	return nil
}

func (c *guardContext) Render(code int, comp web.Component) error {
	c.renderedWith = comp
	return nil
}

type stubComponent struct{}

func (stubComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, "loading")
	return err
}

func newStore() *auth.Store {
	// The backend is never reachable; tests drive state through the
	// session values, which either short-circuit or resolve anonymous.
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewStore(backend.New("http://backend.invalid"), log)
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	t.Run("unresolved state renders the loading component", func(t *testing.T) {
		t.Parallel()

		c := newGuardContext()
		comp := stubComponent{}
		called := false

		guard := middlewares.RequireAuth(middlewares.WithLoadingComponent(comp))
		require.NoError(t, guard(func(web.Context) error { called = true; return nil })(c))

		assert.Equal(t, comp, c.renderedWith)
		assert.False(t, called)
		assert.Empty(t, c.redirectedTo)
	})

	t.Run("unresolved state without component falls back to refresh", func(t *testing.T) {
		t.Parallel()

		c := newGuardContext()
		called := false

		guard := middlewares.RequireAuth()
		require.NoError(t, guard(func(web.Context) error { called = true; return nil })(c))

		assert.Equal(t, "1", c.headers.Get("Refresh"))
		assert.Equal(t, "Loading...", c.body)
		assert.False(t, called)
	})

	t.Run("anonymous visitor is redirected to sign-in", func(t *testing.T) {
		t.Parallel()

		c := newGuardContext()
		chain := middlewares.Authenticate(newStore())(middlewares.RequireAuth()(func(web.Context) error {
			t.Error("protected handler must not run")
			return nil
		}))
		require.NoError(t, chain(c))

		assert.Equal(t, http.StatusSeeOther, c.redirectCode)
		assert.Equal(t, "/signin", c.redirectedTo)
	})

	t.Run("sign-in target is configurable", func(t *testing.T) {
		t.Parallel()

		c := newGuardContext()
		guard := middlewares.RequireAuth(middlewares.WithSignInURL("/login"))
		chain := middlewares.Authenticate(newStore())(guard(func(web.Context) error { return nil }))
		require.NoError(t, chain(c))

		assert.Equal(t, "/login", c.redirectedTo)
	})

	t.Run("cached user reaches the handler", func(t *testing.T) {
		t.Parallel()

		c := newGuardContext()
		c.sessionVals["auth_user"] = `{"id":"u1","email":"jane@acme.com","name":"Jane"}`

		var seen auth.State
		chain := middlewares.Authenticate(newStore())(middlewares.RequireAuth()(func(inner web.Context) error {
			seen = middlewares.AuthState(inner)
			return nil
		}))
		require.NoError(t, chain(c))

		require.True(t, seen.IsAuthenticated())
		assert.Equal(t, "u1", seen.User.ID)
		assert.Empty(t, c.redirectedTo)
	})
}

func TestAuthState(t *testing.T) {
	t.Parallel()

	c := newGuardContext()
	state := middlewares.AuthState(c)
	assert.True(t, state.Loading, "defaults to unresolved before Authenticate runs")
}
