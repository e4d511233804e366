package requests

import "github.com/dmitrymomot/hrassist/pkg/backend"

// CreateCompany is the new-company form payload.
type CreateCompany struct {
	Name            string `form:"name" sanitize:"trim" validate:"required,min=2,max=100"`
	GreytHRUsername string `form:"greyt_hr_username" sanitize:"trim" validate:"required,max=100"`
	GreytHRPassword string `form:"greyt_hr_password" validate:"required,max=200"`
	Description     string `form:"description" sanitize:"text" validate:"omitempty,max=500"`
}

// Params converts the form to the backend payload. An empty description is
// sent as absent, not as "".
func (f CreateCompany) Params() backend.CreateCompanyParams {
	return backend.CreateCompanyParams{
		Name:            f.Name,
		GreytHRUsername: f.GreytHRUsername,
		GreytHRPassword: f.GreytHRPassword,
		Description:     backend.Optional(f.Description),
	}
}

// UpdateCompany is the edit-company form payload. Everything is optional;
// fields left blank are excluded from the partial update so the backend
// keeps their current values.
type UpdateCompany struct {
	Name            string `form:"name" sanitize:"trim" validate:"omitempty,min=2,max=100"`
	GreytHRUsername string `form:"greyt_hr_username" sanitize:"trim" validate:"omitempty,max=100"`
	GreytHRPassword string `form:"greyt_hr_password" validate:"omitempty,max=200"`
	Description     string `form:"description" sanitize:"text" validate:"omitempty,max=500"`
}

// Params converts the form to the backend partial-update payload.
func (f UpdateCompany) Params() backend.UpdateCompanyParams {
	return backend.UpdateCompanyParams{
		Name:            backend.Optional(f.Name),
		GreytHRUsername: backend.Optional(f.GreytHRUsername),
		GreytHRPassword: backend.Optional(f.GreytHRPassword),
		Description:     backend.Optional(f.Description),
	}
}

// Empty reports whether the update carries no changes at all.
func (f UpdateCompany) Empty() bool {
	return f.Name == "" && f.GreytHRUsername == "" && f.GreytHRPassword == "" && f.Description == ""
}
