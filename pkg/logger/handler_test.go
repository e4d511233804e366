package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idKey struct{}

func idExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(idKey{}).(string); ok {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithExtractors(t *testing.T) {
	t.Parallel()

	t.Run("context attribute rides on every entry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(withExtractors(slog.NewJSONHandler(&buf, nil), idExtractor))

		ctx := context.WithValue(context.Background(), idKey{}, "req-1")
		log.InfoContext(ctx, "hello")

		entry := logLine(t, &buf)
		assert.Equal(t, "req-1", entry["request_id"])
	})

	t.Run("absent context value is skipped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(withExtractors(slog.NewJSONHandler(&buf, nil), idExtractor))
		log.Info("hello")

		entry := logLine(t, &buf)
		assert.NotContains(t, entry, "request_id")
	})

	t.Run("nil extractors are dropped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(withExtractors(slog.NewJSONHandler(&buf, nil), nil, idExtractor))
		log.Info("hello")
		assert.NotEmpty(t, buf.Bytes())
	})

	t.Run("extraction survives WithAttrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(withExtractors(slog.NewJSONHandler(&buf, nil), idExtractor)).
			With(slog.String("component", "web"))

		ctx := context.WithValue(context.Background(), idKey{}, "req-2")
		log.InfoContext(ctx, "hello")

		entry := logLine(t, &buf)
		assert.Equal(t, "web", entry["component"])
		assert.Equal(t, "req-2", entry["request_id"])
	})
}

func TestFanout(t *testing.T) {
	t.Parallel()

	t.Run("records reach every handler", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		log := slog.New(newFanout(
			slog.NewJSONHandler(&a, nil),
			slog.NewJSONHandler(&b, nil),
		))
		log.Info("hello")

		assert.Contains(t, a.String(), "hello")
		assert.Contains(t, b.String(), "hello")
	})

	t.Run("level gating is per handler", func(t *testing.T) {
		t.Parallel()

		var info, errOnly bytes.Buffer
		log := slog.New(newFanout(
			slog.NewJSONHandler(&info, nil),
			slog.NewJSONHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
		))
		log.Info("routine")
		log.Error("broken")

		assert.Contains(t, info.String(), "routine")
		assert.NotContains(t, errOnly.String(), "routine")
		assert.Contains(t, errOnly.String(), "broken")
	})
}
