package backend

import "time"

// User is the authenticated account as reported by the backend.
type User struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
}

// Company is a tenant-scoped integration record holding GreytHR credentials.
// The backend never returns the password; AccessToken and TokenExpiry are set
// once the backend has exchanged the credentials for a GreytHR token.
type Company struct {
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	TokenExpiry     *time.Time `json:"token_expiry,omitempty"`
	AccessToken     *string    `json:"access_token,omitempty"`
	Description     *string    `json:"description,omitempty"`
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	GreytHRUsername string     `json:"greyt_hr_username"`
}

// RegisterParams is the payload for account registration.
type RegisterParams struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// LoginParams is the payload for authentication.
type LoginParams struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// CreateCompanyParams is the payload for creating a company record.
// A nil Description is omitted from the request body; callers normalize empty
// input strings to nil before transmission.
type CreateCompanyParams struct {
	Description     *string `json:"description,omitempty"`
	Name            string  `json:"name"`
	GreytHRUsername string  `json:"greyt_hr_username"`
	GreytHRPassword string  `json:"greyt_hr_password"`
}

// UpdateCompanyParams is a partial update. Nil fields are omitted from the
// payload and left untouched by the backend.
type UpdateCompanyParams struct {
	Name            *string `json:"name,omitempty"`
	GreytHRUsername *string `json:"greyt_hr_username,omitempty"`
	GreytHRPassword *string `json:"greyt_hr_password,omitempty"`
	Description     *string `json:"description,omitempty"`
}

// Message is the generic acknowledgement payload.
type Message struct {
	Message string `json:"message"`
}

// ImportReport is the payload returned by the import-employees operation.
type ImportReport struct {
	Message     string `json:"message"`
	CompanyName string `json:"company_name"`
}

// Optional normalizes a form input to the pointer shape the partial-update
// payloads use: an empty string means "field absent".
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
