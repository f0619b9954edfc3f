package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"galleryCPT/internal/config"
	"galleryCPT/internal/models"
	"galleryCPT/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

type RegisterRequest struct {
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	existingUser, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, "", repository.ErrUserExists
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", err
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user := &models.User{
		Email: req.Email,
		Role:  role,
	}

	err = s.userRepo.Create(ctx, user, req.Password)
	if err != nil {
		return nil, "", err
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return user, accessToken, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return user, accessToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecretKey))
}
