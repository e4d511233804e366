// Package htmx covers the slice of the HTMX protocol this app uses:
// request detection and redirects.
package htmx

import "net/http"

// Request headers set by HTMX.
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXBoosted    = "HX-Boosted"
	HeaderHXCurrentURL = "HX-Current-URL"
	HeaderHXTarget     = "HX-Target"
)

// Response headers interpreted by HTMX.
const (
	HeaderHXRedirect = "HX-Redirect"
	HeaderHXRefresh  = "HX-Refresh"
	HeaderHXTrigger  = "HX-Trigger"
)

// IsHTMX reports whether the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// Redirect sends the visitor to url. HTMX requests get an HX-Redirect
// header with a 200 status (HTMX performs the navigation client-side);
// everything else gets a regular 302.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	RedirectWithStatus(w, r, url, http.StatusFound)
}

// RedirectWithStatus is Redirect with a custom status for non-HTMX requests.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, targetURL)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, targetURL, status)
}

// RedirectBack redirects to the "redirect" query parameter, or fallback.
func RedirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	redirectURL := r.URL.Query().Get("redirect")
	if redirectURL == "" {
		redirectURL = fallback
	}
	Redirect(w, r, redirectURL)
}
