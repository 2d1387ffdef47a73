package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokenMgr security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokenMgr security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokenMgr: tokenMgr,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password, fullName string, role domain.UserRole) (*domain.User, error) {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, domain.ErrUsernameTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	_, err = s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = domain.UserRoleStaff
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Active:       true,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", nil, domain.ErrInvalidCredentials
		}
		return "", "", nil, err
	}
	if !user.Active || !security.CheckPassword(password, user.PasswordHash) {
		return "", "", nil, domain.ErrInvalidCredentials
	}

	access, err := s.tokenMgr.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := s.tokenMgr.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		return "", "", nil, err
	}

	_ = s.userRepo.UpdateLastLogin(ctx, user.ID)

	return access, refresh, user, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokenMgr.ValidateToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}
	if !user.Active {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokenMgr.GenerateAccessToken(user.ID, user.Username, user.Role)
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if !security.CheckPassword(currentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, hash)
}
