// Package handlers holds the HTTP route handlers.
package handlers

import (
	"github.com/dmitrymomot/hrassist/internal/middlewares"
	"github.com/dmitrymomot/hrassist/internal/views"
	"github.com/dmitrymomot/hrassist/internal/web"
)

// baseData assembles the per-page boilerplate: title, auth state, and any
// pending flash message.
func baseData(c web.Context, title string) views.Base {
	b := views.Base{Title: title}

	state := middlewares.AuthState(c)
	if state.IsAuthenticated() {
		b.Authenticated = true
		b.UserName = state.User.Name
	}

	var flash views.Flash
	if err := c.Flash("notice", &flash); err == nil && flash.Text != "" {
		b.Flash = &flash
	}

	return b
}

// notify queues a flash message for the next full page view.
func notify(c web.Context, kind, text string) {
	if err := c.SetFlash("notice", views.Flash{Kind: kind, Text: text}); err != nil {
		c.LogWarn("failed to set flash message", "error", err)
	}
}
