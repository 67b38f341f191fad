package commands

import (
	"context"
	"errors"

	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// ErrInvalidCredentials is returned when the e-mail is unknown or the
// password does not match. Both cases share one error so that login
// failures do not reveal which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginCommandHandler authenticates a user and issues an access token.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenGenerator
}

// NewLoginCommandHandler creates a handler for login attempts.
func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenGenerator,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle resolves the user by e-mail, verifies the password and returns a
// signed access token. Fails with ErrInvalidCredentials on any mismatch.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entity, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err = h.hasher.Verify(entity.PasswordHash(), cmd.Password()); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := h.tokens.Generate(entity)
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return token, nil
}
