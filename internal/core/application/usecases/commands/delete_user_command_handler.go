package commands

import (
	"context"
)

// DeleteUserCommandHandler handles user account deletion.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user account deletion.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the user account if it exists.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err := userRepo.Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := userRepo.Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
