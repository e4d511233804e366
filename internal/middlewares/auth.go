package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/hrassist/internal/auth"
	"github.com/dmitrymomot/hrassist/internal/web"
	"github.com/dmitrymomot/hrassist/pkg/logger"
)

type authStateKey struct{}

// GuardConfig configures the protected-area middleware.
type GuardConfig struct {
	// SignInURL is where anonymous visitors are sent. Defaults to "/signin".
	SignInURL string

	// Loading is rendered while the authentication state is unresolved.
	// When nil, an unresolved state falls back to a plain refresh page.
	Loading web.Component
}

// GuardOption configures GuardConfig.
type GuardOption func(*GuardConfig)

// WithSignInURL overrides the sign-in redirect target.
func WithSignInURL(url string) GuardOption {
	return func(cfg *GuardConfig) {
		if url != "" {
			cfg.SignInURL = url
		}
	}
}

// WithLoadingComponent sets the component rendered for an unresolved state.
func WithLoadingComponent(comp web.Component) GuardOption {
	return func(cfg *GuardConfig) {
		cfg.Loading = comp
	}
}

// Authenticate resolves the authentication state once per request and stores
// it in the context for handlers and templates. It never blocks access.
func Authenticate(store *auth.Store) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			c.Set(authStateKey{}, store.Resolve(c))
			return next(c)
		}
	}
}

// RequireAuth guards protected routes. Anonymous visitors are redirected to
// the sign-in page; an unresolved state renders a loading placeholder rather
// than leaking protected content or bouncing a user who is still signing in.
// Must run after Authenticate.
func RequireAuth(opts ...GuardOption) web.Middleware {
	cfg := &GuardConfig{SignInURL: "/signin"}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			switch auth.Decide(AuthState(c)) {
			case auth.DecisionAllow:
				return next(c)
			case auth.DecisionWait:
				if cfg.Loading != nil {
					return c.Render(http.StatusOK, cfg.Loading)
				}
				c.SetHeader("Refresh", "1")
				return c.String(http.StatusOK, "Loading...")
			default:
				return c.Redirect(http.StatusSeeOther, cfg.SignInURL)
			}
		}
	}
}

// AuthState returns the authentication state resolved by Authenticate.
// Returns the unresolved state when the middleware has not run.
func AuthState(c web.Context) auth.State {
	if s, ok := c.Get(authStateKey{}).(auth.State); ok {
		return s
	}
	return auth.Initializing()
}

// UserIDExtractor adds "user_id" to log entries for authenticated requests.
func UserIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if s, ok := ctx.Value(authStateKey{}).(auth.State); ok && s.IsAuthenticated() {
			return slog.String("user_id", s.User.ID), true
		}
		return slog.Attr{}, false
	}
}
