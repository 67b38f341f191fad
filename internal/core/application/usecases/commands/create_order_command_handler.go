package commands

import (
	"context"
	"errors"
	"fmt"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves customer and product references before constructing the aggregate,
// so that no order is built against entities that do not exist.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(customerID, items)
//
//	response, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now persisted in Pending status
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderingUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Validates that the customer and every referenced product exist, builds the
// aggregate, adds all requested lines and persists the order in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (OrderResponse, error) {
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

	aggregate, err := order.NewOrder(cmd.CustomerID())
	if err != nil {
		return OrderResponse{}, err
	}

	for _, item := range cmd.Items() {
		if err = aggregate.AddItem(item.ProductID, item.Quantity, item.UnitPrice); err != nil {
			return OrderResponse{}, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(aggregate), nil
}

// checkCustomerExists resolves a customer reference. A missing customer is a
// bad reference in the request, so the not-found error is wrapped as an
// invalid value rather than surfaced as a lookup failure.
func checkCustomerExists(ctx context.Context, repoFactory CustomerRepoFactory, customerID kernel.UUID) error {
	if _, err := repoFactory.CustomerRepository().Get(ctx, customerID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("customerId",
				fmt.Errorf("customer with id %s does not exist: %w", customerID, err))
		}
		return err
	}

	return nil
}

// checkProductExists resolves a product reference the same way as
// checkCustomerExists resolves customers.
func checkProductExists(ctx context.Context, repoFactory ProductRepoFactory, productID kernel.UUID) error {
	if _, err := repoFactory.ProductRepository().Get(ctx, productID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("productId",
				fmt.Errorf("product with id %s does not exist: %w", productID, err))
		}
		return err
	}

	return nil
}
