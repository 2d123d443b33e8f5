package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email already exists", &ErrEmailAlreadyExists{Email: "a@example.com"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"forbidden", &ErrForbidden{}, http.StatusForbidden},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"resume not found", &ErrResumeNotFound{ResumeID: uuid.New()}, http.StatusNotFound},
		{"job not found", &ErrJobNotFound{JobID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.New()

	assert.Contains(t, (&ErrEmailAlreadyExists{Email: "a@example.com"}).Error(), "a@example.com")
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
	assert.Equal(t, "access denied", (&ErrForbidden{}).Error())
	assert.Contains(t, (&ErrResumeNotFound{ResumeID: id}).Error(), id.String())
	assert.Contains(t, (&ErrJobNotFound{JobID: id}).Error(), id.String())
}
