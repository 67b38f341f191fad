// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order with its line items.
type GetOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse represents one order line in the read model.
type OrderItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// OrderResponse represents an order in the read model.
type OrderResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	PaidAt      *time.Time
	Items       []OrderItemResponse
}
