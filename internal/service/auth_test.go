package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/security"
)

type authServiceFixture struct {
	userRepo *MockUserRepo
	svc      AuthService
}

func newAuthServiceFixture() *authServiceFixture {
	f := &authServiceFixture{userRepo: new(MockUserRepo)}
	tokenMgr := security.NewTokenManager("unit-test-secret", time.Hour, 7*24*time.Hour)
	f.svc = NewAuthService(f.userRepo, tokenMgr)
	return f
}

func TestRegister(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.On("GetByUsername", mock.Anything, "newadmin").Return(nil, sql.ErrNoRows)
	f.userRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(nil, sql.ErrNoRows)
	f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := f.svc.Register(context.Background(), "newadmin", "admin@example.com", "passw0rd!", "New Admin", domain.UserRoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.True(t, user.Active)
	assert.Equal(t, domain.UserRoleAdmin, user.Role)
	assert.NotEqual(t, "passw0rd!", user.PasswordHash)
}

func TestRegisterDefaultsToStaff(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.On("GetByUsername", mock.Anything, "clerk").Return(nil, sql.ErrNoRows)
	f.userRepo.On("GetByEmail", mock.Anything, "clerk@example.com").Return(nil, sql.ErrNoRows)
	f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := f.svc.Register(context.Background(), "clerk", "clerk@example.com", "passw0rd!", "Desk Clerk", "")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleStaff, user.Role)
}

func TestRegisterUsernameTaken(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.On("GetByUsername", mock.Anything, "taken").Return(&domain.User{ID: "u-1", Username: "taken"}, nil)

	_, err := f.svc.Register(context.Background(), "taken", "x@example.com", "pw", "X", "")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLoginAndRefresh(t *testing.T) {
	f := newAuthServiceFixture()
	hash, err := security.HashPassword("correct-horse")
	require.NoError(t, err)
	user := &domain.User{ID: "u-1", Username: "admin", PasswordHash: hash, Active: true, Role: domain.UserRoleAdmin}
	f.userRepo.On("GetByUsername", mock.Anything, "admin").Return(user, nil)
	f.userRepo.On("GetByID", mock.Anything, "u-1").Return(user, nil)
	f.userRepo.On("UpdateLastLogin", mock.Anything, "u-1").Return(nil)

	access, refresh, got, err := f.svc.Login(context.Background(), "admin", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, user.ID, got.ID)

	newAccess, err := f.svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, newAccess)

	// The access token must not work as a refresh token.
	_, err = f.svc.RefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, security.ErrWrongTokenType)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthServiceFixture()
	hash, err := security.HashPassword("correct-horse")
	require.NoError(t, err)
	user := &domain.User{ID: "u-1", Username: "admin", PasswordHash: hash, Active: true}
	f.userRepo.On("GetByUsername", mock.Anything, "admin").Return(user, nil)

	_, _, _, err = f.svc.Login(context.Background(), "admin", "battery-staple")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)

	_, _, _, err := f.svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	f := newAuthServiceFixture()
	hash, err := security.HashPassword("correct-horse")
	require.NoError(t, err)
	user := &domain.User{ID: "u-1", Username: "former", PasswordHash: hash, Active: false}
	f.userRepo.On("GetByUsername", mock.Anything, "former").Return(user, nil)

	_, _, _, err = f.svc.Login(context.Background(), "former", "correct-horse")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	f := newAuthServiceFixture()
	user := &domain.User{ID: "u-1", Username: "admin", Email: "admin@example.com", Active: true}
	f.userRepo.On("GetByID", mock.Anything, "u-1").Return(user, nil)
	f.userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)

	got, err := f.svc.GetProfile(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got.Email)

	_, err = f.svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	f := newAuthServiceFixture()
	hash, err := security.HashPassword("old-pass")
	require.NoError(t, err)
	user := &domain.User{ID: "u-1", PasswordHash: hash, Active: true}
	f.userRepo.On("GetByID", mock.Anything, "u-1").Return(user, nil)
	f.userRepo.On("UpdatePassword", mock.Anything, "u-1", mock.AnythingOfType("string")).Return(nil)

	err = f.svc.ChangePassword(context.Background(), "u-1", "old-pass", "new-pass")
	require.NoError(t, err)

	err = f.svc.ChangePassword(context.Background(), "u-1", "wrong-pass", "new-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
