package order

import (
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer order. It owns its line items
// and is the sole writer of its items collection and status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Total amount always equals the sum of the current items' line totals
//   - Items can only be added, updated or removed while status is Pending
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. External layers hold an owned
// instance and never reach into fields directly.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the owning customer, set once at creation
	customerID kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// totalAmount is derived from the items, never set directly
	totalAmount decimal.Decimal

	// createdAt is the creation timestamp (UTC)
	createdAt time.Time

	// paidAt is set when the order is marked as paid; retained on cancellation
	paidAt *time.Time

	// items is the ordered collection of line items, stable for display
	items []*OrderItem

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order for the given customer.
//
// The order starts in Pending status with no items, a zero total and a
// generated identifier. Fails with a validation error when customerID is
// the zero value.
//
// Example:
//
//	o, err := order.NewOrder(customerID)
//	if err != nil {
//	    // handle validation error
//	}
//	err = o.AddItem(productID, 2, decimal.RequireFromString("25.00"))
func NewOrder(customerID kernel.UUID) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	return &Order{
		id:            kernel.NewUUID(),
		customerID:    customerID,
		status:        Pending,
		totalAmount:   decimal.Zero,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// All identifiers and the status are validated, and the total amount is
// recomputed from the restored items rather than trusted from storage,
// so the derived-total invariant holds even for hand-edited rows.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	createdAt time.Time,
	paidAt *time.Time,
	items []*OrderItem,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:            id,
		customerID:    customerID,
		status:        status,
		createdAt:     createdAt,
		paidAt:        paidAt,
		items:         items,
		isConstructed: true,
	}
	o.recalculateTotal()

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of the current items' line totals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaidAt returns the payment timestamp, or nil if the order was never paid.
// The timestamp is retained when a paid order is cancelled.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// Items returns the order's line items in insertion order.
// The returned slice is a copy; the aggregate remains the sole writer
// of the underlying collection.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a new line item for the given product and recomputes the
// order total.
//
// Fails when:
//   - the order is not in Pending status
//   - quantity is less than 1
//   - unit price is not greater than 0
//
// On failure the items collection and total are unchanged.
func (o *Order) AddItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) error {
	if err := o.ensurePending(); err != nil {
		return err
	}

	item, err := newOrderItem(o.id, productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recalculateTotal()
	return nil
}

// UpdateItem changes the quantity and unit price of the line matching the
// given product and recomputes the line total and order total.
//
// Fails when:
//   - the order is not in Pending status
//   - quantity is less than 1 or unit price is not greater than 0
//   - no line matches the given product ("item not found")
//
// On failure the items collection and total are unchanged.
func (o *Order) UpdateItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) error {
	if err := o.ensurePending(); err != nil {
		return err
	}

	if err := errors.Join(
		validateQuantity(quantity),
		validateUnitPrice(unitPrice),
	); err != nil {
		return err
	}

	item, ok := o.findItem(productID)
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("item not found: product %s is not part of the order", productID))
	}

	if err := item.update(quantity, unitPrice); err != nil {
		return err
	}

	o.recalculateTotal()
	return nil
}

// RemoveItem removes the line matching the given product and recomputes the
// order total.
//
// Fails when the order is not in Pending status or when no line matches the
// given product ("item not found").
func (o *Order) RemoveItem(productID kernel.UUID) error {
	if err := o.ensurePending(); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.productID.IsEqual(productID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.recalculateTotal()
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("productId",
		fmt.Errorf("item not found: product %s is not part of the order", productID))
}

// MarkAsPaid transitions the order to Paid and records the payment timestamp.
//
// Fails when the status transition is not allowed (already paid, shipped or
// cancelled) or when the order has no items.
func (o *Order) MarkAsPaid() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	if len(o.items) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("items",
			errors.New("cannot pay an order without items"))
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.paidAt = &now
	return nil
}

// MarkAsShipped transitions the order to Shipped.
//
// Only paid orders can be shipped; the payment timestamp is not altered.
// Fails when the order has no items.
func (o *Order) MarkAsShipped() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	if len(o.items) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("items",
			errors.New("cannot ship an order without items"))
	}

	o.status = newStatus
	return nil
}

// MarkAsCancelled transitions the order to Cancelled.
//
// Pending and paid orders can be cancelled; shipped and already-cancelled
// orders cannot. A previously recorded payment timestamp is retained.
func (o *Order) MarkAsCancelled() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ensurePending guards item mutations, which are only allowed while Pending.
func (o *Order) ensurePending() error {
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("cannot modify items of a non-pending order"))
	}
	return nil
}

// findItem locates the line item referencing the given product.
func (o *Order) findItem(productID kernel.UUID) (*OrderItem, bool) {
	for _, item := range o.items {
		if item.productID.IsEqual(productID) {
			return item, true
		}
	}
	return nil, false
}

// recalculateTotal recomputes the order total as a pure function of the
// current items collection. Totals are never adjusted incrementally, which
// rules out drift between the items and the derived amount.
func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.lineTotal)
	}
	o.totalAmount = total
}
