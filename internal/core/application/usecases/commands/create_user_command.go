package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a new API user.
// The password travels in plain text inside the command and is hashed
// by the handler before the entity is built.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    kernel.Email
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user.
func NewCreateUserCommand(name string, email kernel.Email, password string, role user.Role) (CreateUserCommand, error) {
	userCommand := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setName(name),
		userCommand.setEmail(email),
		userCommand.setPassword(password),
		userCommand.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Name returns the user's display name.
func (c CreateUserCommand) Name() string {
	return c.name
}

// Email returns the user's e-mail address.
func (c CreateUserCommand) Email() kernel.Email {
	return c.email
}

// Password returns the plain-text password to hash.
func (c CreateUserCommand) Password() string {
	return c.password
}

// Role returns the requested authorization role.
func (c CreateUserCommand) Role() user.Role {
	return c.role
}

func (c *CreateUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateUserCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
