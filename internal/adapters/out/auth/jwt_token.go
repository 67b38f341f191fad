// Package auth provides JWT token issuance and bcrypt password hashing.
// Both are consumed by the application layer through ports, keeping the
// crypto choices out of the core.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ordermanagement/internal/core/domain/model/user"
)

// ErrInvalidToken is returned when a token fails signature or claims checks.
var ErrInvalidToken = errors.New("invalid access token")

// Claims carries the identity and role of an authenticated user.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenGenerator issues HMAC-SHA256 signed access tokens.
type JWTTokenGenerator struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenGenerator creates a token generator with the given signing
// secret and token lifetime.
func NewJWTTokenGenerator(secret string, ttl time.Duration) (*JWTTokenGenerator, error) {
	if secret == "" {
		return nil, errors.New("jwt signing secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt token lifetime must be positive")
	}

	return &JWTTokenGenerator{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Generate creates a signed token carrying the user's ID and role.
func (g *JWTTokenGenerator) Generate(u *user.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := Claims{
		Role: u.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}

	return signed, nil
}

// Parse validates a signed token and returns its claims.
// Rejects tokens signed with any method other than HMAC-SHA256.
func (g *JWTTokenGenerator) Parse(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
