package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by e-mail address.
	// Used during login to resolve credentials.
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)

	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]*user.User, error)

	// Delete removes a user from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
