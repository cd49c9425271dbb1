// internal/services/user_service.go
// Organizer account profile management

package services

import (
	"context"
	"fmt"
	"log"

	"drawbracket/internal/models"
	"drawbracket/internal/repositories"
)

// UserService handles organizer account profile logic
type UserService struct {
	accountRepo *repositories.AccountRepository
	logger      *log.Logger
}

// NewUserService creates a new user service
func NewUserService(accountRepo *repositories.AccountRepository, logger *log.Logger) *UserService {
	return &UserService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GetByID retrieves an account by ID
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Don't expose password hash
	user.PasswordHash = ""

	return user, nil
}

// UpdateProfile updates account profile information
func (s *UserService) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.User, error) {
	user, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if fullName, ok := updates["full_name"].(string); ok && fullName != "" {
		user.FullName = fullName
	}
	if phone, ok := updates["phone"].(string); ok {
		user.Phone = &phone
	}

	if err := s.accountRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	user.PasswordHash = ""

	return user, nil
}
