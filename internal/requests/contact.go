package requests

// Contact is the landing page contact form payload.
type Contact struct {
	Name    string `form:"name" sanitize:"text" validate:"required,min=2,max=100"`
	Email   string `form:"email" sanitize:"trim" validate:"required,email"`
	Message string `form:"message" sanitize:"text" validate:"required,min=10,max=2000"`
}
