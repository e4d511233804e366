// Package views renders the HTML surface of the app. Templates are embedded
// and exposed as templ components so handlers can stay agnostic of the
// rendering engine.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/hrassist/internal/web"
	"github.com/dmitrymomot/hrassist/pkg/backend"
)

//go:embed templates/*.html templates/partials/*.html
var files embed.FS

//go:embed content/*.md
var contentFS embed.FS

// Content exposes the embedded markdown pages (guides, legal), rooted at
// the content directory.
func Content() fs.FS {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		panic(err)
	}
	return sub
}

var tmpl = template.Must(template.New("views").Funcs(template.FuncMap{
	"formatDate": func(v interface{ Format(string) string }) string {
		return v.Format("Jan 2, 2006")
	},
}).ParseFS(files, "templates/*.html", "templates/partials/*.html"))

// component looks up a named template and bridges it into a templ.Component.
// A missing name is a programming error, caught the first time the page is
// rendered in development.
func component(name string, data any) templ.Component {
	t := tmpl.Lookup(name)
	if t == nil {
		panic(fmt.Sprintf("views: template %q not found", name))
	}
	return templ.FromGoHTML(t, data)
}

// Flash is a one-shot notification shown after a redirect.
type Flash struct {
	Kind string `json:"kind"` // "success" or "error"
	Text string `json:"text"`
}

// Base carries the fields every full page needs.
type Base struct {
	Title         string
	UserName      string
	Flash         *Flash
	Authenticated bool
}

// CompanyView decorates a company record with per-record operation state so
// templates can disable controls while a delete or import is running.
type CompanyView struct {
	backend.Company
	Deleting  bool
	Importing bool
}

// LandingData feeds the marketing page.
type LandingData struct {
	Base
	ContactSent bool
}

// Landing renders the marketing page.
func Landing(d LandingData) web.Component {
	return component("landing.html", d)
}

// ContactSuccess renders the post-submit state of the contact form.
func ContactSuccess() web.Component {
	return component("contact_success.html", nil)
}

// AuthFormData feeds the sign-in and sign-up pages.
type AuthFormData struct {
	Base
	Values map[string]string
	Errors map[string]string
	Alert  string
}

// SignIn renders the sign-in page.
func SignIn(d AuthFormData) web.Component {
	return component("signin.html", d)
}

// SignInForm renders only the sign-in form, for HTMX swaps.
func SignInForm(d AuthFormData) web.Component {
	return component("signin_form.html", d)
}

// SignUp renders the registration page.
func SignUp(d AuthFormData) web.Component {
	return component("signup.html", d)
}

// SignUpForm renders only the registration form, for HTMX swaps.
func SignUpForm(d AuthFormData) web.Component {
	return component("signup_form.html", d)
}

// DashboardData feeds the dashboard page and its list partial.
// DeleteMessage and CloseModal drive out-of-band swaps of the modal
// container after a delete: a non-empty DeleteMessage replaces the
// confirmation dialog with a success dialog, CloseModal just dismisses it.
type DashboardData struct {
	Base
	Companies     []CompanyView
	Alert         string
	DeleteMessage string
	CloseModal    bool
}

// Dashboard renders the dashboard page.
func Dashboard(d DashboardData) web.Component {
	return component("dashboard.html", d)
}

// CompanyList renders only the company grid, for HTMX swaps.
func CompanyList(d DashboardData) web.Component {
	return component("company_list.html", d)
}

// CompanyFormData feeds the create and edit dialogs.
type CompanyFormData struct {
	Base
	Company *CompanyView // nil for the create form
	Values  map[string]string
	Errors  map[string]string
	Alert   string
}

// CompanyForm renders the create/edit form. Editing is implied by a non-nil
// Company.
func CompanyForm(d CompanyFormData) web.Component {
	return component("company_form.html", d)
}

// ConfirmDeleteData feeds the delete confirmation dialog.
type ConfirmDeleteData struct {
	Company CompanyView
}

// ConfirmDelete renders the delete confirmation dialog.
func ConfirmDelete(d ConfirmDeleteData) web.Component {
	return component("confirm_delete.html", d)
}

// ImportResultData feeds the import outcome dialog.
type ImportResultData struct {
	CompanyName string
	Message     string
	Failed      bool
}

// ImportResult renders the import outcome dialog.
func ImportResult(d ImportResultData) web.Component {
	return component("import_result.html", d)
}

// PageData feeds static markdown-backed pages.
type PageData struct {
	Base
	Body template.HTML
}

// Page renders a markdown-backed content page.
func Page(d PageData) web.Component {
	return component("page.html", d)
}

// ErrorData feeds the error page.
type ErrorData struct {
	Base
	Status    int
	Message   string
	RequestID string
}

// Error renders the error page.
func Error(d ErrorData) web.Component {
	return component("error.html", d)
}

// Loading renders a minimal placeholder shown while authentication state
// resolves.
func Loading() web.Component {
	return component("loading.html", Base{Title: "Loading"})
}
