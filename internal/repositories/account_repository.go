// internal/repositories/account_repository.go
// Organizer account data access layer

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"drawbracket/internal/models"
)

// AccountRepository handles organizer account data access
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new organizer account
func (r *AccountRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO accounts (
			id, email, password_hash, full_name, phone, role,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Phone,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return err
}

// GetByEmail retrieves an account by email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT
			id, email, password_hash, full_name, phone, role,
			created_at, updated_at
		FROM accounts
		WHERE email = ?
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Phone,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account not found")
	}

	return &user, err
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT
			id, email, password_hash, full_name, phone, role,
			created_at, updated_at
		FROM accounts
		WHERE id = ?
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Phone,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account not found")
	}

	return &user, err
}

// Update updates account profile information
func (r *AccountRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE accounts SET
			full_name = ?, phone = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		user.FullName,
		user.Phone,
		time.Now(),
		user.ID,
	)

	return err
}

// UpdatePassword updates the account password
func (r *AccountRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	query := `UPDATE accounts SET password_hash = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id)
	return err
}

// UpdateLastLogin records a login by setting the account's updated_at timestamp
func (r *AccountRepository) UpdateLastLogin(ctx context.Context, id string) error {
	query := `UPDATE accounts SET updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

// ExistsByEmail checks if an account exists with the given email
func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = ?)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	return exists, err
}
