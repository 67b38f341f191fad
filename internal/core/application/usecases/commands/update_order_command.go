package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderItemPatch describes a partial change to an existing order line.
// Quantity and unit price are optional: a nil field keeps the line's
// current value.
type OrderItemPatch struct {
	ProductID kernel.UUID
	Quantity  *int
	UnitPrice *decimal.Decimal
}

// UpdateOrderCommand represents a partial update of an existing order.
// The customer ID is required on every update; status and items are optional.
// An empty status string means "leave the status unchanged", a nil item list
// means "leave the lines unchanged".
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	status     string
	items      []OrderItemPatch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// Validates that the order ID, customer ID and every patch's product ID
// are set. Status strings are parsed later by the handler.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	status string,
	items []OrderItemPatch,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	orderCommand.status = status
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer reference carried by the update request.
func (c UpdateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Status returns the requested status string, empty when absent.
func (c UpdateOrderCommand) Status() string {
	return c.status
}

// Items returns the requested line patches, nil when absent.
func (c UpdateOrderCommand) Items() []OrderItemPatch {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId",
			errors.New("customerId is required to update an order"))
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateOrderCommand) setItems(items []OrderItemPatch) error {
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("productId",
				errors.New("productId is required to update an order item"))
		}
	}

	c.items = items
	return nil
}
