package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/hrassist/internal/auth"
	"github.com/dmitrymomot/hrassist/internal/middlewares"
	"github.com/dmitrymomot/hrassist/internal/requests"
	"github.com/dmitrymomot/hrassist/internal/views"
	"github.com/dmitrymomot/hrassist/internal/web"
	"github.com/dmitrymomot/hrassist/pkg/backend"
	"github.com/dmitrymomot/hrassist/pkg/tracker"
)

// Dashboard serves the company management area. Every route requires an
// authenticated session.
type Dashboard struct {
	client *backend.Client
	store  *auth.Store
	ops    *tracker.Tracker
	logger *slog.Logger
}

// NewDashboard creates the dashboard handler.
func NewDashboard(client *backend.Client, store *auth.Store, ops *tracker.Tracker, logger *slog.Logger) *Dashboard {
	return &Dashboard{client: client, store: store, ops: ops, logger: logger}
}

func (h *Dashboard) Routes(r web.Router) {
	r.Route("/dashboard", func(r web.Router) {
		r.Use(middlewares.RequireAuth(middlewares.WithLoadingComponent(views.Loading())))

		r.GET("/", h.index, opFallback("Failed to load companies"))
		r.Route("/companies", func(r web.Router) {
			r.GET("/", h.list, opFallback("Failed to load companies"))
			r.GET("/new", h.newForm)
			r.POST("/", h.create, opFallback("Failed to create company"))
			r.GET("/{id}/edit", h.editForm, opFallback("Failed to load companies"))
			r.PUT("/{id}", h.update, opFallback("Failed to update company"))
			r.GET("/{id}/confirm-delete", h.confirmDelete, opFallback("Failed to load companies"))
			r.DELETE("/{id}", h.delete, opFallback("Failed to delete company"))
			r.POST("/{id}/import", h.importEmployees, opFallback("Failed to import employees"))
		})
	})
}

// opFallback maps unexpected failures of a dashboard operation onto a
// stable user-facing message. Errors that already carry one, like
// validation and not-found responses, pass through untouched.
func opFallback(message string) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		recovered := middlewares.Recover()(next)
		return func(c web.Context) error {
			err := recovered(c)
			if err == nil || web.AsHTTPError(err) != nil {
				return err
			}
			return web.ErrInternal(message, web.WithError(err))
		}
	}
}

// opKey scopes an in-flight marker to the browser session so one user's
// running operation never disables another user's buttons.
func (h *Dashboard) opKey(c web.Context, key string) string {
	if sess, err := c.Session(); err == nil && sess != nil {
		return sess.ID + "|" + key
	}
	return key
}

// companies fetches the company list and decorates it with in-flight flags.
// On failure the alert carries the backend's message.
func (h *Dashboard) companies(c web.Context) ([]views.CompanyView, string) {
	sess := h.store.BackendSession(c)
	res := h.client.ListCompanies(c.Context(), sess)
	if !res.OK() {
		c.LogWarn("failed to load companies", slog.String("reason", res.Error))
		return nil, res.Error
	}

	list := make([]views.CompanyView, 0, len(res.Value()))
	for _, company := range res.Value() {
		list = append(list, views.CompanyView{
			Company:   company,
			Deleting:  h.ops.InFlight(tracker.KindDelete, h.opKey(c, company.ID)),
			Importing: h.ops.InFlight(tracker.KindImport, h.opKey(c, company.Name)),
		})
	}
	return list, ""
}

// findCompany resolves a company by its ID. The backend keys companies by
// name, so mutations first resolve the current name through the list.
func (h *Dashboard) findCompany(c web.Context, id string) (*views.CompanyView, string) {
	list, alert := h.companies(c)
	if alert != "" {
		return nil, alert
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], ""
		}
	}
	return nil, ""
}

func (h *Dashboard) dashboardData(c web.Context) views.DashboardData {
	companies, alert := h.companies(c)
	return views.DashboardData{
		Base:      baseData(c, "Dashboard"),
		Companies: companies,
		Alert:     alert,
	}
}

func (h *Dashboard) index(c web.Context) error {
	return c.Render(http.StatusOK, views.Dashboard(h.dashboardData(c)))
}

// list re-renders the company grid. Used by HTMX to refresh after dialogs.
func (h *Dashboard) list(c web.Context) error {
	return c.Render(http.StatusOK, views.CompanyList(h.dashboardData(c)))
}

func (h *Dashboard) newForm(c web.Context) error {
	d := views.CompanyFormData{Base: baseData(c, "Register company")}
	return c.Render(http.StatusOK, views.CompanyForm(d))
}

func (h *Dashboard) create(c web.Context) error {
	var form requests.CreateCompany
	ve, err := c.Bind(&form)
	if err != nil {
		return c.Error(http.StatusBadRequest, "Could not read the form", web.WithError(err))
	}

	d := views.CompanyFormData{
		Base:   baseData(c, "Register company"),
		Values: formValues(form.Name, form.GreytHRUsername, form.Description),
		Errors: ve.ByField(),
	}
	if len(ve) > 0 {
		return c.Render(http.StatusUnprocessableEntity, views.CompanyForm(d))
	}

	res := h.client.CreateCompany(c.Context(), h.store.BackendSession(c), form.Params())
	if !res.OK() {
		d.Alert = res.Error
		return c.Render(http.StatusUnprocessableEntity, views.CompanyForm(d))
	}

	notify(c, "success", "Company "+res.Data.Name+" registered.")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Dashboard) editForm(c web.Context) error {
	company, alert := h.findCompany(c, c.Param("id"))
	if company == nil {
		if alert == "" {
			alert = "Company not found"
		}
		return c.Error(http.StatusNotFound, alert)
	}

	d := views.CompanyFormData{
		Base:    baseData(c, "Edit company"),
		Company: company,
		Values:  formValues(company.Name, company.GreytHRUsername, stringOr(company.Description)),
	}
	return c.Render(http.StatusOK, views.CompanyForm(d))
}

func (h *Dashboard) update(c web.Context) error {
	company, alert := h.findCompany(c, c.Param("id"))
	if company == nil {
		if alert == "" {
			alert = "Company not found"
		}
		return c.Error(http.StatusNotFound, alert)
	}

	var form requests.UpdateCompany
	ve, err := c.Bind(&form)
	if err != nil {
		return c.Error(http.StatusBadRequest, "Could not read the form", web.WithError(err))
	}

	d := views.CompanyFormData{
		Base:    baseData(c, "Edit company"),
		Company: company,
		Values:  formValues(form.Name, form.GreytHRUsername, form.Description),
		Errors:  ve.ByField(),
	}
	if len(ve) > 0 {
		return c.Render(http.StatusUnprocessableEntity, views.CompanyForm(d))
	}
	if form.Empty() {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	// The update is addressed by the company's current name; a rename in the
	// form payload takes effect on the backend only after this call.
	res := h.client.UpdateCompany(c.Context(), h.store.BackendSession(c), company.Name, form.Params())
	if !res.OK() {
		d.Alert = res.Error
		return c.Render(http.StatusUnprocessableEntity, views.CompanyForm(d))
	}

	notify(c, "success", "Company "+res.Data.Name+" updated.")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Dashboard) confirmDelete(c web.Context) error {
	company, alert := h.findCompany(c, c.Param("id"))
	if company == nil {
		if alert == "" {
			alert = "Company not found"
		}
		return c.Error(http.StatusNotFound, alert)
	}
	return c.Render(http.StatusOK, views.ConfirmDelete(views.ConfirmDeleteData{Company: *company}))
}

// delete removes a company. Deletes are tracked per company ID; a second
// delete for the same record while one is running is a no-op that just
// re-renders the current list.
func (h *Dashboard) delete(c web.Context) error {
	id := c.Param("id")
	company, alert := h.findCompany(c, id)
	if company == nil {
		if alert == "" {
			// Already gone; render the fresh list and dismiss the dialog.
			d := h.dashboardData(c)
			d.CloseModal = true
			return c.Render(http.StatusOK, views.CompanyList(d))
		}
		return c.Error(http.StatusNotFound, alert)
	}

	key := h.opKey(c, id)
	if !h.ops.Start(tracker.KindDelete, key) {
		d := h.dashboardData(c)
		d.CloseModal = true
		return c.Render(http.StatusOK, views.CompanyList(d))
	}
	defer h.ops.Finish(tracker.KindDelete, key)

	res := h.client.DeleteCompany(c.Context(), h.store.BackendSession(c), company.Name)
	d := h.dashboardData(c)
	if !res.OK() {
		d.Alert = res.Error
		d.CloseModal = true
		return c.Render(http.StatusUnprocessableEntity, views.CompanyList(d))
	}

	// The fresh grid swaps into place while an out-of-band update replaces
	// the confirmation dialog with the backend's success message.
	d.DeleteMessage = res.Data.Message
	return c.Render(http.StatusOK, views.CompanyList(d))
}

// importEmployees runs the GreytHR employee import. Imports are tracked per
// company name, independently from deletes, so deleting one company never
// blocks importing another and vice versa.
func (h *Dashboard) importEmployees(c web.Context) error {
	company, alert := h.findCompany(c, c.Param("id"))
	if company == nil {
		if alert == "" {
			alert = "Company not found"
		}
		return c.Error(http.StatusNotFound, alert)
	}

	key := h.opKey(c, company.Name)
	if !h.ops.Start(tracker.KindImport, key) {
		return c.Render(http.StatusOK, views.ImportResult(views.ImportResultData{
			CompanyName: company.Name,
			Message:     "An import is already running for this company.",
			Failed:      true,
		}))
	}
	defer h.ops.Finish(tracker.KindImport, key)

	res := h.client.ImportEmployees(c.Context(), h.store.BackendSession(c), company.Name)
	if !res.OK() {
		return c.Render(http.StatusUnprocessableEntity, views.ImportResult(views.ImportResultData{
			CompanyName: company.Name,
			Message:     res.Error,
			Failed:      true,
		}))
	}

	return c.Render(http.StatusOK, views.ImportResult(views.ImportResultData{
		CompanyName: res.Data.CompanyName,
		Message:     res.Data.Message,
	}))
}

func formValues(name, username, description string) map[string]string {
	return map[string]string{
		"name":              name,
		"greyt_hr_username": username,
		"description":       description,
	}
}

func stringOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
