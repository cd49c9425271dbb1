// internal/utils/validators.go
// Validation utility functions

package utils

import (
	"fmt"
	"net/mail"
	"regexp"
)

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	_, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePhone validates a phone number (basic validation)
func ValidatePhone(phone string) error {
	// Basic phone validation - in production, use a proper library
	phoneRegex := regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("invalid phone format")
	}
	return nil
}

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	// Check for at least one uppercase letter
	if !regexp.MustCompile(`[A-Z]`).MatchString(password) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	// Check for at least one lowercase letter
	if !regexp.MustCompile(`[a-z]`).MatchString(password) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	// Check for at least one number
	if !regexp.MustCompile(`[0-9]`).MatchString(password) {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}

// ValidateSportName validates the free-text sport identifier on a draw request
func ValidateSportName(name string) error {
	if len(name) < 2 {
		return fmt.Errorf("sport name must be at least 2 characters long")
	}
	if len(name) > 64 {
		return fmt.Errorf("sport name must not exceed 64 characters")
	}
	return nil
}
