// internal/services/container.go
// Service container provides dependency injection for all business logic services.
// This pattern makes testing easier and keeps services loosely coupled.

package services

import (
	"errors"
	"log"

	"drawbracket/internal/config"
	"drawbracket/internal/database"
	"drawbracket/internal/repositories"
)

// Container holds all service instances and provides them to handlers
type Container struct {
	Auth         *AuthService
	User         *UserService
	Draw         *DrawService
	Notification *NotificationService
	Cache        *CacheService
	Metrics      *MetricsService
}

// NewContainer creates a new service container with all dependencies
func NewContainer(db *database.Connections, cfg *config.Config, logger *log.Logger) *Container {
	// Initialize repositories
	repos := repositories.NewContainer(db)

	// Initialize cache service
	cache := NewCacheService(db.Redis, logger)

	// Initialize notification and metrics services
	notification := NewNotificationService(db, cfg, logger)
	metrics := NewMetricsService()

	// Initialize services with their dependencies
	auth := NewAuthService(repos.Account, cfg.Auth, cache, logger)
	user := NewUserService(repos.Account, logger)
	drawSvc := NewDrawService(repos.Draw, cache, metrics, notification, logger)

	return &Container{
		Auth:         auth,
		User:         user,
		Draw:         drawSvc,
		Notification: notification,
		Cache:        cache,
		Metrics:      metrics,
	}
}

// Common errors used across services
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
