// Package logger builds the application's slog loggers.
//
// Loggers are JSON-formatted, carry a component attribute for filtering, and
// optionally mirror warnings and errors to Sentry. Context extractors inject
// request-scoped attributes (request ID, user ID) into every entry.
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// New creates a JSON-formatted logger with optional context extractors.
func New(component string, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(withExtractors(h, extractors...)).
		With(slog.String("component", component))
}

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// NewWithSentry creates a logger that writes to stdout and mirrors warnings
// and errors to Sentry. An empty DSN degrades to stdout-only logging, so local
// development needs no Sentry account.
func NewWithSentry(component string, cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdoutHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if cfg.DSN == "" {
		return slog.New(withExtractors(stdoutHandler, extractors...)).
			With(slog.String("component", component))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		// Graceful degradation: stdout only if Sentry init fails.
		slog.New(stdoutHandler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(withExtractors(stdoutHandler, extractors...)).
			With(slog.String("component", component))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},                 // errors create Issues
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError}, // logs stored for context
	}.NewSentryHandler(context.Background())

	combined := newFanout(stdoutHandler, sentryHandler)
	return slog.New(withExtractors(combined, extractors...)).
		With(slog.String("component", component))
}
