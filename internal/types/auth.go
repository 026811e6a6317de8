package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AdminLoginRequest represents the admin back-office login request.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required"`
}

// AdminUser represents an admin account for API responses.
type AdminUser struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// AdminLoginResponse represents the login response with the admin profile and
// a bearer token.
type AdminLoginResponse struct {
	User  *AdminUser `json:"user"`
	Token string     `json:"token"`
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	FirstName  string `json:"firstName" validate:"required,min=1"`
	LastName   string `json:"lastName" validate:"required,min=1"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Subject    string `json:"subject" validate:"required,min=1"`
	Message    string `json:"message" validate:"required,min=1"`
	Newsletter bool   `json:"newsletter,omitempty"`
}

// Validate validates the AdminLoginRequest using the validator.
func (r *AdminLoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ContactRequest using the validator.
func (r *ContactRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
