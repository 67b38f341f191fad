package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents a partial update of a user account.
// Nil fields keep the account's current values. A provided password is
// re-hashed by the handler.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     *string
	email    *kernel.Email
	password *string
	role     *user.Role

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to update a user account.
func NewUpdateUserCommand(
	userID kernel.UUID,
	name *string,
	email *kernel.Email,
	password *string,
	role *user.Role,
) (UpdateUserCommand, error) {
	userCommand := UpdateUserCommand{
		name:     name,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setEmail(email),
		userCommand.setRole(role),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user being updated.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the new display name, nil when unchanged.
func (c UpdateUserCommand) Name() *string {
	return c.name
}

// Email returns the new e-mail address, nil when unchanged.
func (c UpdateUserCommand) Email() *kernel.Email {
	return c.email
}

// Password returns the new plain-text password, nil when unchanged.
func (c UpdateUserCommand) Password() *string {
	return c.password
}

// Role returns the new authorization role, nil when unchanged.
func (c UpdateUserCommand) Role() *user.Role {
	return c.role
}

func (c *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserCommand) setEmail(email *kernel.Email) error {
	if email != nil {
		if err := email.Validate(); err != nil {
			return err
		}
	}

	c.email = email
	return nil
}

func (c *UpdateUserCommand) setRole(role *user.Role) error {
	if role != nil {
		if err := role.Validate(); err != nil {
			return err
		}
	}

	c.role = role
	return nil
}
