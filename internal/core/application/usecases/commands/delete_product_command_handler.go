package commands

import (
	"context"
)

// DeleteProductCommandHandler handles product deletion.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the product if it exists.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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
	if _, err := productRepo.Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := productRepo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
