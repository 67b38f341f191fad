package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents a request to remove a user account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to delete a user account.
func NewDeleteUserCommand(userID kernel.UUID) (DeleteUserCommand, error) {
	userCommand := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := userCommand.setUserID(userID); err != nil {
		return DeleteUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user being deleted.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeleteUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}
