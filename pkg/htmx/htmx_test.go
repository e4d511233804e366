package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hrassist/pkg/htmx"
)

func htmxRequest(target string) *http.Request {
	r := httptest.NewRequest("GET", target, nil)
	r.Header.Set(htmx.HeaderHXRequest, "true")
	return r
}

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	assert.True(t, htmx.IsHTMX(htmxRequest("/")))
	assert.False(t, htmx.IsHTMX(httptest.NewRequest("GET", "/", nil)))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set(htmx.HeaderHXRequest, "false")
	assert.False(t, htmx.IsHTMX(r))
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("htmx gets a header, not a 3xx", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.Redirect(rec, htmxRequest("/dashboard"), "/signin")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/signin", rec.Header().Get(htmx.HeaderHXRedirect))
	})

	t.Run("plain request gets a 302", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.Redirect(rec, httptest.NewRequest("GET", "/dashboard", nil), "/signin")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/signin", rec.Header().Get("Location"))
	})

	t.Run("redirect back honors the query parameter", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.RedirectBack(rec, httptest.NewRequest("GET", "/signin?redirect=/dashboard", nil), "/")
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

		rec = httptest.NewRecorder()
		htmx.RedirectBack(rec, httptest.NewRequest("GET", "/signin", nil), "/")
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}
