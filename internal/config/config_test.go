package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrassist/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply when only the secret is set", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", "0123456789abcdef0123456789abcdef")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, "http://127.0.0.1:8000/api/v1", cfg.BackendBaseURL)
		assert.Equal(t, 2592000, cfg.SessionMaxAge)
		assert.Empty(t, cfg.RedisURL)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("missing secret fails", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", "")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", "0123456789abcdef0123456789abcdef")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("ADDR", ":9090")
		t.Setenv("SESSION_SECURE", "true")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.True(t, cfg.IsProduction())
		assert.Equal(t, ":9090", cfg.Addr)
		assert.True(t, cfg.SessionSecure)
	})
}
