package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents an authentication attempt with e-mail and password.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    kernel.Email
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command to authenticate a user.
func NewLoginCommand(email kernel.Email, password string) (LoginCommand, error) {
	loginCommand := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loginCommand.setEmail(email),
		loginCommand.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return loginCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the e-mail address used to log in.
func (c LoginCommand) Email() kernel.Email {
	return c.email
}

// Password returns the plain-text password to verify.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
