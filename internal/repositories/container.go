// internal/repositories/container.go
// Repository container for dependency injection

package repositories

import (
	"drawbracket/internal/database"
)

// Container holds all repository instances
type Container struct {
	Account *AccountRepository
	Draw    *DrawRepository
}

// NewContainer creates a new repository container
func NewContainer(conn *database.Connections) *Container {
	return &Container{
		Account: NewAccountRepository(conn.MySQL),
		Draw:    NewDrawRepository(conn.MongoDB),
	}
}
