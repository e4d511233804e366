// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/hrassist/pkg/mailer/resend"
)

// Config is the full application configuration.
type Config struct {
	// HTTP server.
	Addr        string `env:"ADDR" envDefault:":8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Assistant backend.
	BackendBaseURL string `env:"BACKEND_BASE_URL" envDefault:"http://127.0.0.1:8000/api/v1"`

	// Cookies and sessions.
	CookieSecret  string `env:"COOKIE_SECRET,required"`
	SessionSecure bool   `env:"SESSION_SECURE" envDefault:"false"`
	SessionMaxAge int    `env:"SESSION_MAX_AGE" envDefault:"2592000"` // 30 days

	// Session store. Empty RedisURL falls back to the in-memory store.
	RedisURL string `env:"REDIS_URL"`

	// Observability.
	SentryDSN string `env:"SENTRY_DSN"`

	// Contact form.
	ContactEmail string `env:"CONTACT_EMAIL" envDefault:"hello@hrassist.app"`
	Resend       resend.Config
}

// IsProduction reports whether the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
