package middlewares

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/hrassist/internal/web"
)

// RequestLogger returns middleware that logs one line per completed request
// with method, path, status, size, and duration.
func RequestLogger() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			start := time.Now()
			err := next(c)

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Duration("duration", time.Since(start)),
			}
			if rw := c.ResponseWriter(); rw != nil {
				attrs = append(attrs,
					slog.Int("status", rw.Status()),
					slog.Int64("size", rw.Size()),
				)
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
				c.LogError("request failed", attrs...)
				return err
			}

			c.LogInfo("request completed", attrs...)
			return nil
		}
	}
}
