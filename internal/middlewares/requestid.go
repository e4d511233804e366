package middlewares

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/hrassist/internal/web"
	"github.com/dmitrymomot/hrassist/pkg/id"
	"github.com/dmitrymomot/hrassist/pkg/logger"
)

type requestIDKey struct{}

// DefaultRequestIDHeaders are checked in order for an existing request ID.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Request-Id", "X-Correlation-ID"}

// RequestID returns middleware that assigns a unique ID to each request.
// An incoming ID from a known header is preserved so upstream tracing IDs
// survive; otherwise a new one is generated. The ID is stored in the
// context and echoed in the X-Request-ID response header.
func RequestID() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			var reqID string
			for _, header := range DefaultRequestIDHeaders {
				if v := c.Header(header); v != "" {
					reqID = v
					break
				}
			}
			if reqID == "" {
				reqID = id.New()
			}

			c.Set(requestIDKey{}, reqID)
			c.SetHeader("X-Request-ID", reqID)

			return next(c)
		}
	}
}

// GetRequestID extracts the request ID from the context, or "".
func GetRequestID(c web.Context) string {
	if v, ok := c.Get(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// RequestIDExtractor adds "request_id" to all log entries made with a
// request-scoped context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(requestIDKey{}).(string); ok && v != "" {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
}
