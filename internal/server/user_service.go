package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/types"
)

// UserStore is the subset of the database used for user authentication.
// It is satisfied by *db.DB and by test fakes.
type UserStore interface {
	CreateUser(ctx context.Context, name, email string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// UserService implements account registration, login and password changes
// for the users whose resumes the matcher stores.
type UserService struct {
	db             UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService wires a UserService to its store and password policy.
func NewUserService(db UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{db: db, passwordConfig: passwordConfig}
}

// publicUser strips the stored row down to the fields the API may expose.
// The password hash never leaves this package.
func publicUser(row *db.User) *types.User {
	if row == nil {
		return nil
	}
	return &types.User{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		PasswordSet: row.PasswordSet,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// Register creates an account. The user row and its password hash are
// written in two steps because CreateUser is also used by flows that set a
// password later.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	hash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.db.CreateUser(ctx, req.Name, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if err := s.db.UpdatePassword(ctx, userID, hash); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	row, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}
	return publicUser(row), nil
}

// Login authenticates by email and password. Unknown email, wrong password
// and password-not-set all return the same ErrInvalidCredentials, so the
// response never confirms whether an address has an account.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	row, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if row == nil || !s.passwordConfig.VerifyPassword(req.Password, row.PasswordHash) || !row.PasswordSet {
		return nil, &ErrInvalidCredentials{}
	}
	return publicUser(row), nil
}

// UpdatePassword changes a user's password after verifying the current one.
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	row, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if row == nil {
		return &ErrUserNotFound{UserID: userID}
	}
	if !s.passwordConfig.VerifyPassword(currentPassword, row.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	hash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.db.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// GetUser returns a user's public profile.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	row, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if row == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return publicUser(row), nil
}
