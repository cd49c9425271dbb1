// internal/services/auth_service.go
// Authentication and authorization service

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"drawbracket/internal/config"
	"drawbracket/internal/models"
	"drawbracket/internal/repositories"
	"drawbracket/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication and authorization
type AuthService struct {
	accountRepo *repositories.AccountRepository
	config      config.AuthConfig
	cache       *CacheService
	logger      *log.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo *repositories.AccountRepository,
	config config.AuthConfig,
	cache *CacheService,
	logger *log.Logger,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		config:      config,
		cache:       cache,
		logger:      logger,
	}
}

// Register creates a new organizer account
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, *models.TokenPair, error) {
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, nil, err
	}

	exists, err := s.accountRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BCryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           utils.GenerateUUID(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Phone:        &req.Phone,
		Role:         models.RoleOrganizer,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.accountRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("failed to create account: %w", err)
	}

	tokenPair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	user.PasswordHash = ""

	return user, tokenPair, nil
}

// Login authenticates an account and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	user, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	go s.accountRepo.UpdateLastLogin(context.Background(), user.ID)

	user.PasswordHash = ""

	return user, tokenPair, nil
}

// RefreshToken generates new tokens using a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	cacheKey := fmt.Sprintf("refresh_token_%s", refreshToken)
	var userID string
	if err := s.cache.Get(cacheKey, &userID); err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	s.cache.Delete(cacheKey)

	return s.generateTokenPair(user)
}

// generateTokenPair creates access and refresh tokens
func (s *AuthService) generateTokenPair(user *models.User) (*models.TokenPair, error) {
	accessToken, err := utils.GenerateJWT(user.ID, string(user.Role), s.config.JWTSecret, s.config.JWTExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	cacheKey := fmt.Sprintf("refresh_token_%s", refreshToken)
	if err := s.cache.Set(cacheKey, user.ID, s.config.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("failed to cache refresh token: %w", err)
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.config.JWTExpiration),
	}, nil
}

// ValidateToken validates a JWT token and returns the account ID and role
func (s *AuthService) ValidateToken(token string) (string, string, error) {
	userID, role, err := utils.ValidateJWT(token, s.config.JWTSecret)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	return userID, role, nil
}

// Logout invalidates a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		cacheKey := fmt.Sprintf("refresh_token_%s", refreshToken)
		s.cache.Delete(cacheKey)
	}
	return nil
}

// ChangePassword changes an account's password
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("account not found: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.config.BCryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.accountRepo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
