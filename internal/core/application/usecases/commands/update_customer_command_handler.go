package commands

import (
	"context"
)

// UpdateCustomerCommandHandler handles partial updates of customer profiles.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, merges the provided fields into the profile and
// persists the result. A missing customer surfaces as a not-found error.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()
	entity, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = entity.UpdateProfile(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
