package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher hashes and verifies passwords with bcrypt.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher with the default bcrypt cost.
func NewBcryptPasswordHasher() *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a bcrypt hash from the plain-text password.
func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Verify reports whether the password matches the stored hash.
func (h *BcryptPasswordHasher) Verify(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
