package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// GetOrderByIDQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query and returns the order read model with its lines.
// Returns an object-not-found error when the order does not exist.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			total_amount,
			created_at,
			paid_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	response, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	response.Items = items

	return response, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrderRow maps one orders row into the read model.
func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		id         uuid.UUID
		customerID uuid.UUID
		status     int
		total      decimal.Decimal
		createdAt  time.Time
		paidAt     sql.NullTime
	)

	if err := row.Scan(&id, &customerID, &status, &total, &createdAt, &paidAt); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	orderCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	response := OrderResponse{
		ID:          orderID,
		CustomerID:  orderCustomerID,
		Status:      order.Status(status).String(),
		TotalAmount: total,
		CreatedAt:   createdAt,
		Items:       make([]OrderItemResponse, 0),
	}

	if paidAt.Valid {
		paid := paidAt.Time
		response.PaidAt = &paid
	}

	return response, nil
}

// loadOrderItems reads the line items for one order, oldest first.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price,
			line_total
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			productID uuid.UUID
			item      OrderItemResponse
		)

		if err = rows.Scan(&id, &productID, &item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = itemProductID

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
