package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// GetProductByIDQueryHandler retrieves a single product from the database.
type GetProductByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetProductByIDQueryHandler creates a handler for single product retrieval.
func NewGetProductByIDQueryHandler(db *gorm.DB) GetProductByIDQueryHandler {
	return GetProductByIDQueryHandler{db: db}
}

// Handle executes the query and returns the product read model.
func (h GetProductByIDQueryHandler) Handle(ctx context.Context, query GetProductByIDQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sku,
			price,
			stock_quantity,
			is_active,
			created_at
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	response, err := scanProductRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductResponse{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
		}
		return ProductResponse{}, err
	}

	return response, nil
}

// scanProductRow maps one products row into the read model.
func scanProductRow(row rowScanner) (ProductResponse, error) {
	var (
		id       uuid.UUID
		response ProductResponse
	)

	err := row.Scan(
		&id,
		&response.Name,
		&response.Sku,
		&response.Price,
		&response.StockQuantity,
		&response.IsActive,
		&response.CreatedAt,
	)
	if err != nil {
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}
	response.ID = productID

	return response, nil
}
