package main

import (
	"context"
	"embed"
	"net/http"
	"os"

	"github.com/dmitrymomot/hrassist/internal/auth"
	"github.com/dmitrymomot/hrassist/internal/config"
	"github.com/dmitrymomot/hrassist/internal/handlers"
	"github.com/dmitrymomot/hrassist/internal/middlewares"
	"github.com/dmitrymomot/hrassist/internal/views"
	"github.com/dmitrymomot/hrassist/internal/web"
	"github.com/dmitrymomot/hrassist/pkg/backend"
	"github.com/dmitrymomot/hrassist/pkg/cookie"
	"github.com/dmitrymomot/hrassist/pkg/logger"
	"github.com/dmitrymomot/hrassist/pkg/mailer"
	resendmailer "github.com/dmitrymomot/hrassist/pkg/mailer/resend"
	"github.com/dmitrymomot/hrassist/pkg/markdown"
	"github.com/dmitrymomot/hrassist/pkg/redis"
	"github.com/dmitrymomot/hrassist/pkg/session"
	"github.com/dmitrymomot/hrassist/pkg/tracker"
)

//go:embed static
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.NewWithSentry("web",
		logger.SentryConfig{DSN: cfg.SentryDSN, Environment: cfg.Environment},
		middlewares.RequestIDExtractor(),
		middlewares.UserIDExtractor(),
	)

	client := backend.New(cfg.BackendBaseURL)
	authStore := auth.NewStore(client, log)
	ops := tracker.New()
	md := markdown.NewRenderer(views.Content())

	var sender mailer.Sender
	if cfg.Resend.APIKey != "" {
		sender = resendmailer.New(cfg.Resend)
	}

	sessionStore, readiness, closeStore := buildSessionStore(context.Background(), cfg)
	defer closeStore()

	app := web.New(
		web.WithLogger(log),
		web.WithCookieOptions(
			cookieOptions(cfg)...,
		),
		web.WithSession(sessionStore,
			web.WithSessionMaxAge(cfg.SessionMaxAge),
			web.WithSessionSecure(cfg.SessionSecure),
		),
		web.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.RequestLogger(),
			middlewares.Authenticate(authStore),
		),
		web.WithHandlers(
			handlers.NewPages(md, sender, cfg.ContactEmail, log),
			handlers.NewAuth(authStore),
			handlers.NewDashboard(client, authStore, ops, log),
		),
		web.WithStaticFiles("/static/", assets, "static"),
		web.WithErrorHandler(handleError),
		web.WithNotFoundHandler(handleNotFound),
		web.WithHealthChecks(readiness...),
	)

	if err := app.Run(cfg.Addr, web.Logger(log)); err != nil {
		log.Error("application error", "error", err)
		os.Exit(1)
	}
}

// buildSessionStore picks Redis when configured and falls back to the
// in-memory store for local development. Returns the store, readiness
// checks, and a cleanup function.
func buildSessionStore(ctx context.Context, cfg config.Config) (session.Store, []web.HealthOption, func()) {
	if cfg.RedisURL == "" {
		mem := session.NewMemoryStore()
		return mem, nil, mem.Close
	}

	client, err := redis.Open(ctx, cfg.RedisURL)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	readiness := []web.HealthOption{
		web.WithReadinessCheck("redis", redis.Healthcheck(client)),
	}
	return session.NewRedisStore(client), readiness, func() { _ = client.Close() }
}

func cookieOptions(cfg config.Config) []cookie.Option {
	return []cookie.Option{
		cookie.WithSecret(cfg.CookieSecret),
		cookie.WithSecure(cfg.SessionSecure),
		cookie.WithHTTPOnly(true),
	}
}

// handleError maps handler errors onto the error page, or an inline alert
// for HTMX requests. Internal details stay in the logs.
func handleError(c web.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Something went wrong on our side."

	if httpErr := web.AsHTTPError(err); httpErr != nil {
		status = httpErr.Code
		message = httpErr.Message
		c.LogWarn("request error", "status", status, "error", err)
	} else {
		c.LogError("unhandled error", "error", err)
	}

	d := views.ErrorData{
		Base:      views.Base{Title: http.StatusText(status)},
		Status:    status,
		Message:   message,
		RequestID: middlewares.GetRequestID(c),
	}
	if c.IsHTMX() {
		return c.String(status, message)
	}
	return c.Render(status, views.Error(d))
}

func handleNotFound(c web.Context) error {
	d := views.ErrorData{
		Base:    views.Base{Title: "Not found"},
		Status:  http.StatusNotFound,
		Message: "The page you are looking for does not exist.",
	}
	return c.Render(http.StatusNotFound, views.Error(d))
}
