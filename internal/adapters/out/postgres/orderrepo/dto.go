// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and are cascade-deleted with the order.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	Status      int       `gorm:"index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt   time.Time
	PaidAt      *time.Time
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in the database.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Status:      int(aggregate.Status()),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
		PaidAt:      aggregate.PaidAt(),
		Items:       make([]OrderItemDTO, 0, len(items)),
	}

	for _, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   item.OrderID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, order.Status(dto.Status), dto.CreatedAt, dto.PaidAt, items)
}

func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(id, orderID, productID, dto.Quantity, dto.UnitPrice)
}
