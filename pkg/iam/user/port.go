package user

import (
	"context"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

type UserRepository interface {
	// Create stores a new user
	Create(ctx context.Context, user *User) error

	// FindByID retrieves a user by ID
	FindByID(ctx context.Context, id kernel.UserID) (*User, error)

	// FindByEmail retrieves a user by email, case-insensitively
	FindByEmail(ctx context.Context, email kernel.Email) (*User, error)
}
