package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/core/ports"
)

// CreateUserCommandHandler handles user registration.
// Hashes the command's password before building the entity.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle hashes the password, creates the user entity and persists it.
// Returns the identifier of the new user.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return kernel.UUID{}, err
	}

	entity, err := user.NewUser(cmd.Name(), cmd.Email(), passwordHash, cmd.Role())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, entity); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return entity.ID(), nil
}
