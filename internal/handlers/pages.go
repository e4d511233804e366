package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/hrassist/internal/middlewares"
	"github.com/dmitrymomot/hrassist/internal/requests"
	"github.com/dmitrymomot/hrassist/internal/views"
	"github.com/dmitrymomot/hrassist/internal/web"
	"github.com/dmitrymomot/hrassist/pkg/mailer"
	"github.com/dmitrymomot/hrassist/pkg/markdown"
	"github.com/dmitrymomot/hrassist/pkg/sanitizer"
)

// Pages serves the marketing page, the contact form, and markdown-backed
// content pages.
type Pages struct {
	md        *markdown.Renderer
	sender    mailer.Sender
	contactTo string
	logger    *slog.Logger
}

// NewPages creates the pages handler. sender may be nil, in which case the
// contact form logs instead of emailing.
func NewPages(md *markdown.Renderer, sender mailer.Sender, contactTo string, logger *slog.Logger) *Pages {
	return &Pages{md: md, sender: sender, contactTo: contactTo, logger: logger}
}

func (h *Pages) Routes(r web.Router) {
	r.GET("/", h.home)
	r.POST("/contact", h.contact)
	r.GET("/guide/greythr-setup", h.contentPage("greythr-setup.md", "GreytHR setup guide"))
	r.GET("/privacy-policy", h.contentPage("privacy-policy.md", "Privacy Policy"))
	r.GET("/terms-and-conditions", h.contentPage("terms-and-conditions.md", "Terms and Conditions"))

	// Integration guides carry workspace specifics, so they sit behind
	// sign-in like the dashboard does.
	guard := middlewares.RequireAuth(middlewares.WithLoadingComponent(views.Loading()))
	r.GET("/slack-integration", h.contentPage("slack-integration.md", "Slack Integration Guide"), guard)
	r.GET("/greythr-integration", h.contentPage("greythr-integration.md", "GreytHR Integration Guide"), guard)
}

// home renders the landing page. Signed-in visitors go straight to the
// dashboard.
func (h *Pages) home(c web.Context) error {
	state := middlewares.AuthState(c)
	if state.IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	d := views.LandingData{Base: baseData(c, "AI-driven HR assistant")}
	return c.Render(http.StatusOK, views.Landing(d))
}

func (h *Pages) contact(c web.Context) error {
	var form requests.Contact
	ve, err := c.Bind(&form)
	if err != nil {
		return c.Error(http.StatusBadRequest, "Could not read the form", web.WithError(err))
	}
	if len(ve) > 0 {
		return c.String(http.StatusUnprocessableEntity, ve[0].Message)
	}

	if h.sender == nil {
		h.logger.InfoContext(c.Context(), "contact message received",
			slog.String("from", form.Email))
		return c.Render(http.StatusOK, views.ContactSuccess())
	}

	email := &mailer.Email{
		Subject: fmt.Sprintf("Contact form: %s", form.Name),
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", form.Name, form.Email, form.Message),
		HTML: fmt.Sprintf("<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
			sanitizer.SanitizeText(form.Name), sanitizer.SanitizeText(form.Email),
			sanitizer.SanitizeText(form.Message)),
		ReplyTo: form.Email,
		To:      []string{h.contactTo},
	}
	if err := h.sender.Send(c.Context(), email); err != nil {
		c.LogError("failed to send contact email", slog.Any("error", err))
		return c.String(http.StatusUnprocessableEntity, "Could not send your message. Please try again later.")
	}

	return c.Render(http.StatusOK, views.ContactSuccess())
}

// contentPage returns a handler rendering one embedded markdown document.
func (h *Pages) contentPage(file, title string) web.HandlerFunc {
	return func(c web.Context) error {
		body, err := h.md.Render(file)
		if err != nil {
			return c.Error(http.StatusInternalServerError, "Page unavailable", web.WithError(err))
		}
		d := views.PageData{Base: baseData(c, title), Body: body}
		return c.Render(http.StatusOK, views.Page(d))
	}
}
