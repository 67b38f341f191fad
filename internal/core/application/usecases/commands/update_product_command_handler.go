package commands

import (
	"context"
)

// UpdateProductCommandHandler handles partial updates of products.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, applies the provided fields and persists
// the result. A missing product surfaces as a not-found error.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()
	entity, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = entity.ApplyChanges(cmd.Name(), cmd.Sku(), cmd.Price(), cmd.StockQuantity(), cmd.IsActive()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
