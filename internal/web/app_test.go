package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFiles(t *testing.T) {
	t.Parallel()

	assets := fstest.MapFS{
		"public/css/app.css": {Data: []byte("body{margin:0}")},
		"public/js/app.js":   {Data: []byte("console.log('hi')")},
	}
	app := New(WithStaticFiles("/static/", assets, "public"))

	serve := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("serves assets under the mount prefix", func(t *testing.T) {
		t.Parallel()

		rec := serve("/static/css/app.css")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "body{margin:0}", rec.Body.String())
		assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})

	t.Run("missing asset is not found", func(t *testing.T) {
		t.Parallel()

		rec := serve("/static/css/missing.css")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("directory listing is refused", func(t *testing.T) {
		t.Parallel()

		rec := serve("/static/css/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
