package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// AuthHandler serves the /auth endpoints: registration, login and password
// changes. Every other route in the API requires the token these endpoints
// issue.
type AuthHandler struct {
	users    *UserService
	tokens   *JWTService
	validate *validator.Validate
}

func NewAuthHandler(userService *UserService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		users:    userService,
		tokens:   jwtService,
		validate: validator.New(),
	}
}

// readRequest decodes the body into dst and runs struct validation. It
// writes the error response itself and reports whether the handler should
// continue.
func (h *AuthHandler) readRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		http.Error(w, validationMessage(err), http.StatusBadRequest)
		return false
	}
	return true
}

// issueSession signs a token for the user and writes the login payload.
func (h *AuthHandler) issueSession(w http.ResponseWriter, status int, user *types.User) {
	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, types.LoginResponse{User: user, Token: token})
}

// Register creates an account and logs the new user straight in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if !h.readRequest(w, r, &req) {
		return
	}

	user, err := h.users.Register(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	h.issueSession(w, http.StatusCreated, user)
}

// Login exchanges email and password for a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !h.readRequest(w, r, &req) {
		return
	}

	user, err := h.users.Login(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	h.issueSession(w, http.StatusOK, user)
}

// UpdatePasswordWithUserID changes the authenticated user's password. The
// userID comes from the verified token, not the request body.
func (h *AuthHandler) UpdatePasswordWithUserID(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var req types.UpdatePasswordRequest
	if !h.readRequest(w, r, &req) {
		return
	}

	if err := h.users.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// writeJSON writes data as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// validationMessage reports the first failed field so clients see which
// input to correct.
func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fmt.Sprintf("validation error: %s - %s", ve[0].Field(), ve[0].Tag())
	}
	return "validation error: invalid request"
}
