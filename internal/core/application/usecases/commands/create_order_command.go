package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemSpec describes a requested order line: the product to order,
// how many units and at what price. Quantity and price bounds are enforced
// by the order aggregate, not here.
type OrderItemSpec struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateOrderCommand represents a request to create a new order for a customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []OrderItemSpec{
//	    {ProductID: productID, Quantity: 2, UnitPrice: decimal.NewFromInt(25)},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	response, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	items      []OrderItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer ID and every item's product ID are set.
func NewCreateOrderCommand(customerID kernel.UUID, items []OrderItemSpec) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemSpec) error {
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("productId", err)
		}
	}

	c.items = items
	return nil
}
