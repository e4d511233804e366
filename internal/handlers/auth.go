package handlers

import (
	"net/http"

	"github.com/dmitrymomot/hrassist/internal/auth"
	"github.com/dmitrymomot/hrassist/internal/middlewares"
	"github.com/dmitrymomot/hrassist/internal/requests"
	"github.com/dmitrymomot/hrassist/internal/views"
	"github.com/dmitrymomot/hrassist/internal/web"
)

// Auth serves sign-in, sign-up, and sign-out.
type Auth struct {
	store *auth.Store
}

// NewAuth creates the auth handler.
func NewAuth(store *auth.Store) *Auth {
	return &Auth{store: store}
}

func (h *Auth) Routes(r web.Router) {
	r.GET("/signin", h.showSignIn)
	r.POST("/signin", h.signIn)
	r.GET("/signup", h.showSignUp)
	r.POST("/signup", h.signUp)
	r.POST("/logout", h.logout)
}

func (h *Auth) showSignIn(c web.Context) error {
	if middlewares.AuthState(c).IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	d := views.AuthFormData{Base: baseData(c, "Sign in")}
	return c.Render(http.StatusOK, views.SignIn(d))
}

func (h *Auth) signIn(c web.Context) error {
	var form requests.SignIn
	ve, err := c.Bind(&form)
	if err != nil {
		return c.Error(http.StatusBadRequest, "Could not read the form", web.WithError(err))
	}

	d := views.AuthFormData{
		Base:   baseData(c, "Sign in"),
		Values: map[string]string{"email": form.Email},
		Errors: ve.ByField(),
	}
	if len(ve) > 0 {
		return c.RenderPartial(http.StatusUnprocessableEntity, views.SignIn(d), views.SignInForm(d))
	}

	res := h.store.Login(c, form.Params())
	if !res.OK() {
		d.Alert = res.Error
		return c.RenderPartial(http.StatusUnprocessableEntity, views.SignIn(d), views.SignInForm(d))
	}

	notify(c, "success", "Welcome back, "+res.Data.Name+"!")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Auth) showSignUp(c web.Context) error {
	if middlewares.AuthState(c).IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	d := views.AuthFormData{Base: baseData(c, "Create account")}
	return c.Render(http.StatusOK, views.SignUp(d))
}

func (h *Auth) signUp(c web.Context) error {
	var form requests.SignUp
	ve, err := c.Bind(&form)
	if err != nil {
		return c.Error(http.StatusBadRequest, "Could not read the form", web.WithError(err))
	}

	d := views.AuthFormData{
		Base:   baseData(c, "Create account"),
		Values: map[string]string{"name": form.Name, "email": form.Email},
		Errors: ve.ByField(),
	}
	if len(ve) > 0 {
		return c.RenderPartial(http.StatusUnprocessableEntity, views.SignUp(d), views.SignUpForm(d))
	}

	res := h.store.Register(c, form.Params())
	if !res.OK() {
		d.Alert = res.Error
		return c.RenderPartial(http.StatusUnprocessableEntity, views.SignUp(d), views.SignUpForm(d))
	}

	notify(c, "success", "Account created. Sign in to continue.")
	return c.Redirect(http.StatusSeeOther, "/signin")
}

// logout signs out locally first so the visitor is never stuck signed in
// behind a failing backend.
func (h *Auth) logout(c web.Context) error {
	h.store.Logout(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
