package commands

import (
	"errors"
	"time"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand cancels pending orders that have not been paid
// within the given age. Issued periodically by the cleanup job.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale pending orders.
// olderThan must be positive.
func NewCancelStaleOrdersCommand(olderThan time.Duration) (CancelStaleOrdersCommand, error) {
	if olderThan <= 0 {
		return CancelStaleOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("olderThan",
			errors.New("stale order age must be positive"))
	}

	return CancelStaleOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the minimum age of pending orders to cancel.
func (c CancelStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}
