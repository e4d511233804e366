// Package backend is the typed client for the HR assistant backend REST API.
//
// Every operation returns a Result: a discriminated success/failure value with
// exactly one of Data or Error populated. Expected failures (validation errors,
// non-2xx statuses, transport failures) never surface as Go errors; they all
// resolve into the Error side of the Result, so callers have a single error
// path per operation.
//
// The backend authenticates with an HTTP-only session cookie. Because this
// process is the HTTP client, the cookie is captured into a Session value owned
// by the caller and replayed on subsequent calls. The client never inspects the
// cookie's contents.
package backend

import (
	"context"
	"net/http"
	"net/url"
)

// DefaultBaseURL is the backend API base path used when none is configured.
const DefaultBaseURL = "http://127.0.0.1:8000/api/v1"

// Client talks to the backend REST API.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom *http.Client.
// Useful for tests and for tuning transport behavior.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// New creates a backend client for the given base URL.
// An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Auth endpoints.

// Register creates a new account. On success the backend sets the auth cookie,
// which is captured into sess.
func (c *Client) Register(ctx context.Context, sess *Session, params RegisterParams) Result[User] {
	return request[User](ctx, c, sess, http.MethodPost, "/auth/register", params)
}

// Login authenticates with email and password. On success the backend sets the
// auth cookie, which is captured into sess.
func (c *Client) Login(ctx context.Context, sess *Session, params LoginParams) Result[User] {
	return request[User](ctx, c, sess, http.MethodPost, "/auth/login", params)
}

// CurrentUser returns the user associated with the session cookie.
func (c *Client) CurrentUser(ctx context.Context, sess *Session) Result[User] {
	return request[User](ctx, c, sess, http.MethodGet, "/auth/me", nil)
}

// Logout invalidates the backend session.
func (c *Client) Logout(ctx context.Context, sess *Session) Result[Message] {
	return request[Message](ctx, c, sess, http.MethodPost, "/auth/logout", nil)
}

// Company endpoints. Company-name path segments are percent-encoded.

// CreateCompany creates a company integration record.
func (c *Client) CreateCompany(ctx context.Context, sess *Session, params CreateCompanyParams) Result[Company] {
	return request[Company](ctx, c, sess, http.MethodPost, "/companies/", params)
}

// ListCompanies returns all companies owned by the current user.
func (c *Client) ListCompanies(ctx context.Context, sess *Session) Result[[]Company] {
	return request[[]Company](ctx, c, sess, http.MethodGet, "/companies/", nil)
}

// GetCompany returns a single company by name.
func (c *Client) GetCompany(ctx context.Context, sess *Session, name string) Result[Company] {
	return request[Company](ctx, c, sess, http.MethodGet, companyPath(name), nil)
}

// UpdateCompany applies a partial update to the company with the given name.
// Empty optional fields must be normalized to nil by the caller so they are
// omitted from the payload.
func (c *Client) UpdateCompany(ctx context.Context, sess *Session, name string, params UpdateCompanyParams) Result[Company] {
	return request[Company](ctx, c, sess, http.MethodPut, companyPath(name), params)
}

// DeleteCompany removes the company with the given name.
func (c *Client) DeleteCompany(ctx context.Context, sess *Session, name string) Result[Message] {
	return request[Message](ctx, c, sess, http.MethodDelete, companyPath(name), nil)
}

// ImportEmployees triggers a one-shot employee synchronization for the company.
// There is no client-visible progress beyond start and completion.
func (c *Client) ImportEmployees(ctx context.Context, sess *Session, name string) Result[ImportReport] {
	return request[ImportReport](ctx, c, sess, http.MethodPost, companyPath(name)+"/import-employees", nil)
}

func companyPath(name string) string {
	return "/companies/" + url.PathEscape(name)
}
