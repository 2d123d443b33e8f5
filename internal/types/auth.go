package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// authValidate is shared by the request Validate methods. The validator is
// safe for concurrent use and caches struct metadata, so one instance
// serves the package.
var authValidate = validator.New()

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest is the body of PUT /auth/password. The current
// password must be re-proven even though the route is token-protected.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// User is the profile shape exposed by the API. It mirrors the db row
// minus the password hash, and lives here so handlers and the db package
// do not import each other.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PasswordSet bool      `json:"password_set"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse carries the user profile and a signed session token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

func (r *RegisterRequest) Validate() error {
	return authValidate.Struct(r)
}

func (r *LoginRequest) Validate() error {
	return authValidate.Struct(r)
}

func (r *UpdatePasswordRequest) Validate() error {
	return authValidate.Struct(r)
}
