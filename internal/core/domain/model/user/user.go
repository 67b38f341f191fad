// Package user provides the User entity for API authentication and
// role-based authorization. Users carry a password hash produced by an
// external hasher; the entity never sees plain-text passwords.
package user

import (
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User represents an account that can authenticate against the API.
//
// Invariants:
//   - name and password hash are non-empty
//   - email is a valid value object
//   - role is a valid Role
type User struct {
	id            kernel.UUID
	name          string
	email         kernel.Email
	passwordHash  string
	role          Role
	createdAt     time.Time
	isConstructed bool
}

// NewUser creates a User with a generated identifier.
// passwordHash must be the output of the application's password hasher,
// never a plain-text password.
func NewUser(name string, email kernel.Email, passwordHash string, role Role) (*User, error) {
	u := &User{
		id:            kernel.NewUUID(),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.UUID, name string, email kernel.Email, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	u := &User{
		id:            id,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's e-mail address.
func (u *User) Email() kernel.Email {
	return u.email
}

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's authorization role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdateName changes the user's display name.
func (u *User) UpdateName(name string) error {
	return u.setName(name)
}

// UpdateEmail changes the user's e-mail address.
func (u *User) UpdateEmail(email kernel.Email) error {
	return u.setEmail(email)
}

// UpdateRole changes the user's authorization role.
func (u *User) UpdateRole(role Role) error {
	return u.setRole(role)
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
