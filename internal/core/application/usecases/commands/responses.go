package commands

import (
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderItemResponse is the line item projection returned by order commands.
type OrderItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// OrderResponse is the order projection returned by order commands.
// It mirrors the aggregate state after the command has been applied.
type OrderResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	PaidAt      *time.Time
	Items       []OrderItemResponse
}

// NewOrderResponse builds a projection from an order aggregate.
func NewOrderResponse(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()

	response := OrderResponse{
		ID:          aggregate.ID(),
		CustomerID:  aggregate.CustomerID(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
		PaidAt:      aggregate.PaidAt(),
		Items:       make([]OrderItemResponse, 0, len(items)),
	}

	for _, item := range items {
		response.Items = append(response.Items, OrderItemResponse{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal(),
		})
	}

	return response
}
