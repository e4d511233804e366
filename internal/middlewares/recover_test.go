package middlewares_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrassist/internal/middlewares"
	"github.com/dmitrymomot/hrassist/internal/web"
)

type recoverContext struct {
	*guardContext
	logged []string
}

func (c *recoverContext) LogError(msg string, _ ...any) {
	c.logged = append(c.logged, msg)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes an error", func(t *testing.T) {
		t.Parallel()

		c := &recoverContext{guardContext: newGuardContext()}
		err := middlewares.Recover()(func(web.Context) error {
			panic("boom")
		})(c)

		require.Error(t, err)
		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		assert.Equal(t, "boom", pe.Value)
		assert.NotEmpty(t, pe.Stack)
		assert.Contains(t, err.Error(), "boom")
		assert.Contains(t, c.logged, "panic recovered")
	})

	t.Run("plain errors pass through untouched", func(t *testing.T) {
		t.Parallel()

		c := &recoverContext{guardContext: newGuardContext()}
		sentinel := errors.New("handler failed")
		err := middlewares.Recover()(func(web.Context) error { return sentinel })(c)

		assert.ErrorIs(t, err, sentinel)
		_, ok := middlewares.AsPanicError(err)
		assert.False(t, ok)
	})

	t.Run("success is untouched", func(t *testing.T) {
		t.Parallel()

		c := &recoverContext{guardContext: newGuardContext()}
		assert.NoError(t, middlewares.Recover()(func(web.Context) error { return nil })(c))
	})
}
