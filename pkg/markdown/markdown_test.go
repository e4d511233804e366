package markdown_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrassist/pkg/markdown"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"guide.md": {Data: []byte("# Setup\n\nCreate a **dedicated** account.\n")},
		"evil.md":  {Data: []byte("Hello\n\n<script>alert(1)</script>\n")},
	}

	t.Run("renders headings and emphasis", func(t *testing.T) {
		t.Parallel()

		r := markdown.NewRenderer(fsys)
		html, err := r.Render("guide.md")
		require.NoError(t, err)

		assert.Contains(t, string(html), "<h1>Setup</h1>")
		assert.Contains(t, string(html), "<strong>dedicated</strong>")
	})

	t.Run("strips scripts from content", func(t *testing.T) {
		t.Parallel()

		r := markdown.NewRenderer(fsys)
		html, err := r.Render("evil.md")
		require.NoError(t, err)

		assert.Contains(t, string(html), "Hello")
		assert.NotContains(t, string(html), "<script>")
		assert.NotContains(t, string(html), "alert(1)")
	})

	t.Run("missing file reports an error", func(t *testing.T) {
		t.Parallel()

		r := markdown.NewRenderer(fsys)
		_, err := r.Render("missing.md")
		assert.Error(t, err)
	})

	t.Run("repeated renders are cached", func(t *testing.T) {
		t.Parallel()

		mutable := fstest.MapFS{"page.md": {Data: []byte("first")}}
		r := markdown.NewRenderer(mutable)

		html, err := r.Render("page.md")
		require.NoError(t, err)
		require.Contains(t, string(html), "first")

		mutable["page.md"].Data = []byte("second")
		html, err = r.Render("page.md")
		require.NoError(t, err)
		assert.Contains(t, string(html), "first", "cache serves the original render")
	})
}
