package order

import (
	"errors"
	"fmt"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through a constructor function.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via its constructor")

// OrderItem is a line item owned exclusively by an Order aggregate.
// Its lifecycle is bound to the order's lifecycle and it is never
// referenced from outside the aggregate boundary.
//
// Invariants:
//   - quantity is at least 1
//   - unit price is greater than 0
//   - line total always equals quantity × unit price
//
// OrderItem has no exported mutators; the owning Order applies changes
// through its own methods.
type OrderItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// orderID is the identifier of the owning order
	orderID kernel.UUID

	// productID references the ordered product by ID only
	productID kernel.UUID

	// quantity is the number of units ordered (at least 1)
	quantity int

	// unitPrice is the price of a single unit (greater than 0)
	unitPrice decimal.Decimal

	// lineTotal is quantity × unitPrice, recomputed on every mutation
	lineTotal decimal.Decimal

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// newOrderItem creates a line item for the given order.
// Quantity and unit price are validated; the line total is derived.
func newOrderItem(orderID, productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if err := errors.Join(
		productID.Validate(),
		validateQuantity(quantity),
		validateUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return &OrderItem{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		lineTotal:     unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}, nil
}

// RestoreOrderItem reconstructs a line item from persistence.
// The line total is recomputed rather than trusted from storage.
func RestoreOrderItem(id, orderID, productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		productID.Validate(),
		validateQuantity(quantity),
		validateUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return &OrderItem{
		id:            id,
		orderID:       orderID,
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		lineTotal:     unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}, nil
}

// Validate ensures the OrderItem instance was properly constructed.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}

	return nil
}

// ID returns the line item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *OrderItem) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the identifier of the ordered product.
func (i *OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *OrderItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// LineTotal returns quantity × unit price.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.lineTotal
}

// update applies a new quantity and unit price and recomputes the line total.
// Only the owning Order calls this, after its own status checks.
func (i *OrderItem) update(quantity int, unitPrice decimal.Decimal) error {
	if err := errors.Join(
		validateQuantity(quantity),
		validateUnitPrice(unitPrice),
	); err != nil {
		return err
	}

	i.quantity = quantity
	i.unitPrice = unitPrice
	i.lineTotal = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("quantity must be at least 1, got %d", quantity))
	}
	return nil
}

func validateUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("unit price must be greater than 0, got %s", unitPrice))
	}
	return nil
}
