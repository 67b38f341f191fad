package commands

import (
	"context"
	"errors"
	"fmt"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles partial updates of existing orders.
// Reference checks run first, then the status transition, then the line
// patches, all through the aggregate's own methods.
type UpdateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderingUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Validates the customer and product references, loads the order, applies the
// requested status transition and merges the line patches, then persists the
// refreshed aggregate.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (OrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := checkCustomerExists(ctx, uow, cmd.CustomerID()); err != nil {
		return OrderResponse{}, err
	}

	for _, item := range cmd.Items() {
		if err := checkProductExists(ctx, uow, item.ProductID); err != nil {
			return OrderResponse{}, err
		}
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = applyStatus(aggregate, cmd.Status()); err != nil {
		return OrderResponse{}, err
	}

	if err = applyItemPatches(aggregate, cmd.Items()); err != nil {
		return OrderResponse{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(aggregate), nil
}

// applyStatus parses the requested status string and invokes the matching
// aggregate transition. Reverting to Pending is rejected here even though
// the state machine itself would treat it as a no-op.
func applyStatus(aggregate *order.Order, raw string) error {
	if raw == "" {
		return nil
	}

	status, err := order.StatusFromString(raw)
	if err != nil {
		return err
	}

	switch status {
	case order.Pending:
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("cannot change order back to pending status"))
	case order.Paid:
		return aggregate.MarkAsPaid()
	case order.Shipped:
		return aggregate.MarkAsShipped()
	case order.Cancelled:
		return aggregate.MarkAsCancelled()
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("invalid order status: %q", raw))
	}
}

// applyItemPatches merges partial line changes into the aggregate. A nil
// quantity or unit price keeps the line's current value.
func applyItemPatches(aggregate *order.Order, patches []OrderItemPatch) error {
	for _, patch := range patches {
		existing := findItem(aggregate, patch)
		if existing == nil {
			return errs.NewValueIsInvalidErrorWithCause("productId",
				fmt.Errorf("product %s not found in order", patch.ProductID))
		}

		quantity := existing.Quantity()
		if patch.Quantity != nil {
			quantity = *patch.Quantity
		}

		unitPrice := existing.UnitPrice()
		if patch.UnitPrice != nil {
			unitPrice = *patch.UnitPrice
		}

		if err := aggregate.UpdateItem(patch.ProductID, quantity, unitPrice); err != nil {
			return err
		}
	}

	return nil
}

func findItem(aggregate *order.Order, patch OrderItemPatch) *order.OrderItem {
	for _, item := range aggregate.Items() {
		if item.ProductID().IsEqual(patch.ProductID) {
			return item
		}
	}

	return nil
}
