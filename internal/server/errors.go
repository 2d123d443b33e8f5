// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Service errors carry enough context for the handler to pick a status code
// via HTTPStatus. Anything not listed there maps to a 500.

// ErrEmailAlreadyExists is returned by Register when the address is taken.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials covers every login failure. The message never says
// which part was wrong.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound is returned when a user ID resolves to no account.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch is returned by UpdatePassword when the current
// password check fails.
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrResumeNotFound is returned when a resume ID resolves to nothing the
// caller can see.
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrJobNotFound is returned when a job posting ID is unknown.
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrForbidden is returned when the token is valid but the resource belongs
// to someone else. The message matches ErrResumeNotFound in spirit: it does
// not reveal that the resource exists.
type ErrForbidden struct{}

func (e *ErrForbidden) Error() string {
	return "access denied"
}

// ErrValidation reports a request field that failed validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps service errors onto REST status codes.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrForbidden:
		return http.StatusForbidden
	case *ErrUserNotFound, *ErrResumeNotFound, *ErrJobNotFound:
		return http.StatusNotFound
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
