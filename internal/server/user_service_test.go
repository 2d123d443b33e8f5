package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/types"
)

// fakeUserStore is an in-memory UserStore for unit tests.
type fakeUserStore struct {
	users map[uuid.UUID]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := f.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return &ErrUserNotFound{UserID: userID}
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func testPasswordConfig() *config.PasswordConfig {
	return &config.PasswordConfig{
		BcryptCost: 10, // Lower cost for faster tests
		Pepper:     "",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "test@example.com", user.Email)
	assert.True(t, user.PasswordSet)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	req := &types.RegisterRequest{Name: "Test User", Email: "test@example.com", Password: "password123"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Login_Success(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	_, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	_, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email:    "test@example.com",
		Password: "wrongpassword",
	})

	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	// Same generic error as a wrong password, no account enumeration
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_UpdatePassword_Success(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	err = svc.UpdatePassword(context.Background(), user.ID, "password123", "newpassword456")
	require.NoError(t, err)

	// Old password no longer works, new one does
	_, err = svc.Login(context.Background(), &types.LoginRequest{Email: "test@example.com", Password: "password123"})
	require.Error(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{Email: "test@example.com", Password: "newpassword456"})
	require.NoError(t, err)
}

func TestUserService_UpdatePassword_WrongCurrentPassword(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	err = svc.UpdatePassword(context.Background(), user.ID, "wrongpassword", "newpassword456")
	require.Error(t, err)
	assert.IsType(t, &ErrPasswordMismatch{}, err)
}

func TestUserService_UpdatePassword_UserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	err := svc.UpdatePassword(context.Background(), uuid.New(), "password123", "newpassword456")
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}

func TestUserService_GetUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	got, err := svc.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Test User", got.Name)

	_, err = svc.GetUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}
