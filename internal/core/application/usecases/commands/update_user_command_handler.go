package commands

import (
	"context"

	"ordermanagement/internal/core/ports"
)

// UpdateUserCommandHandler handles partial updates of user accounts.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewUpdateUserCommandHandler creates a handler for user account updates.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle loads the user, applies the provided fields and persists the
// result. A provided password is hashed before it replaces the stored hash.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
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
	entity, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if name := cmd.Name(); name != nil {
		if err = entity.UpdateName(*name); err != nil {
			return err
		}
	}

	if email := cmd.Email(); email != nil {
		if err = entity.UpdateEmail(*email); err != nil {
			return err
		}
	}

	if password := cmd.Password(); password != nil {
		passwordHash, hashErr := h.hasher.Hash(*password)
		if hashErr != nil {
			return hashErr
		}

		if err = entity.ChangePassword(passwordHash); err != nil {
			return err
		}
	}

	if role := cmd.Role(); role != nil {
		if err = entity.UpdateRole(*role); err != nil {
			return err
		}
	}

	if err = userRepo.Update(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
