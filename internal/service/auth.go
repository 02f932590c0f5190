package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"SiteModels/internal/middleware"
	"SiteModels/internal/model"
	"SiteModels/internal/repo"
)

// AuthService — вход, смена пароля и обновление access‑токена.
type AuthService struct {
	users      repo.UserRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     *zap.SugaredLogger
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(users repo.UserRepository, secret string, accessTTL, refreshTTL time.Duration, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{
		users:      users,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// LoginResult — пара токенов после успешного входа.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *model.User
}

// Login проверяет учётные данные и выпускает токены.
// Заблокированные и удалённые учётки не проходят.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.IsDeleted {
		return nil, ErrUserDeleted
	}
	if u.Status == model.StatusBlocked {
		return nil, ErrUserBlocked
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := middleware.BuildToken(u, s.secret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}
	refresh, err := middleware.BuildToken(u, s.secret, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}

	return &LoginResult{AccessToken: access, RefreshToken: refresh, User: u}, nil
}

// Refresh выпускает новый access‑токен по валидному refresh‑токену.
// Состояние учётки перечитывается: блокировка/удаление ломают обновление.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := middleware.ParseToken(refreshToken, s.secret)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	u, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if u.IsDeleted || u.Status == model.StatusBlocked {
		return "", ErrInvalidCredentials
	}
	return middleware.BuildToken(u, s.secret, s.accessTTL)
}

// ChangePassword меняет пароль после проверки старого.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// RefreshTTL нужен хендлерам для выставления cookie.
func (s *AuthService) RefreshTTL() time.Duration { return s.refreshTTL }
