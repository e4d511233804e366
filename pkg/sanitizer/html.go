// Package sanitizer strips dangerous markup from untrusted strings.
package sanitizer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	pagePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text.
		strictPolicy = bluemonday.StrictPolicy()

		// pagePolicy allows the markup produced by rendering trusted
		// markdown content pages (legal texts, setup guides).
		pagePolicy = bluemonday.NewPolicy()
		pagePolicy.AllowStandardURLs()
		pagePolicy.AllowElements(
			"h1", "h2", "h3", "h4",
			"p", "br", "hr",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"table", "thead", "tbody", "tr", "th", "td",
		)
		pagePolicy.AllowAttrs("href").OnElements("a")
		pagePolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizePage allows the tags used by rendered markdown pages.
// Strips scripts, event handlers, and javascript: URLs.
func SanitizePage(s string) string {
	initPolicies()
	return pagePolicy.Sanitize(s)
}

// SanitizeText strips all HTML and trims surrounding whitespace.
// Use for single-line form inputs before they are displayed or transmitted.
func SanitizeText(s string) string {
	initPolicies()
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
