package ports

import (
	"ordermanagement/internal/core/domain/model/user"
)

// TokenGenerator issues signed access tokens for authenticated users.
type TokenGenerator interface {
	// Generate creates a signed token carrying the user's identity and role.
	Generate(u *user.User) (string, error)
}

// PasswordHasher hashes plain-text passwords and verifies them against
// stored hashes.
type PasswordHasher interface {
	// Hash derives a storage-safe hash from a plain-text password.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the stored hash.
	Verify(hash string, password string) error
}
