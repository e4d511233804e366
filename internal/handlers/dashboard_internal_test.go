package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrassist/internal/middlewares"
	"github.com/dmitrymomot/hrassist/internal/web"
)

// webContext aliases web.Context so embedding it does not create a field
// named Context that collides with the interface's Context() method.
type webContext = web.Context

// opContext is the minimal context surface opFallback touches.
type opContext struct {
	webContext
}

func (opContext) LogError(msg string, attrs ...any) {}

func TestOpFallback(t *testing.T) {
	t.Parallel()

	t.Run("unexpected error gets the operation message", func(t *testing.T) {
		t.Parallel()

		h := opFallback("Failed to delete company")(func(c web.Context) error {
			return errors.New("boom")
		})

		err := h(opContext{})
		httpErr := web.AsHTTPError(err)
		require.NotNil(t, httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
		assert.Equal(t, "Failed to delete company", httpErr.Message)
		assert.EqualError(t, httpErr.Err, "boom")
	})

	t.Run("errors with their own message pass through", func(t *testing.T) {
		t.Parallel()

		h := opFallback("Failed to update company")(func(c web.Context) error {
			return web.ErrNotFound("Company not found")
		})

		err := h(opContext{})
		httpErr := web.AsHTTPError(err)
		require.NotNil(t, httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
		assert.Equal(t, "Company not found", httpErr.Message)
	})

	t.Run("panic is contained with the operation message", func(t *testing.T) {
		t.Parallel()

		h := opFallback("Failed to import employees")(func(c web.Context) error {
			panic("boom")
		})

		err := h(opContext{})
		httpErr := web.AsHTTPError(err)
		require.NotNil(t, httpErr)
		assert.Equal(t, "Failed to import employees", httpErr.Message)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		assert.Equal(t, "boom", pe.Value)
	})

	t.Run("success is untouched", func(t *testing.T) {
		t.Parallel()

		h := opFallback("Failed to load companies")(func(c web.Context) error {
			return nil
		})
		assert.NoError(t, h(opContext{}))
	})
}
