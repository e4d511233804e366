package requests

import "github.com/dmitrymomot/hrassist/pkg/backend"

// SignIn is the sign-in form payload.
type SignIn struct {
	Email      string `form:"email" sanitize:"trim" validate:"required,email"`
	Password   string `form:"password" validate:"required"`
	RememberMe bool   `form:"remember_me"`
}

// Params converts the form to the backend payload.
func (f SignIn) Params() backend.LoginParams {
	return backend.LoginParams{
		Email:      f.Email,
		Password:   f.Password,
		RememberMe: f.RememberMe,
	}
}

// SignUp is the registration form payload.
type SignUp struct {
	Name            string `form:"name" sanitize:"text" validate:"required,min=2,max=100"`
	Email           string `form:"email" sanitize:"trim" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// Params converts the form to the backend payload.
func (f SignUp) Params() backend.RegisterParams {
	return backend.RegisterParams{
		Email:    f.Email,
		Name:     f.Name,
		Password: f.Password,
	}
}
