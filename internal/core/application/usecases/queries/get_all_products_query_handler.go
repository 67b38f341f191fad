package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllProductsQueryHandler retrieves all products from the database.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for product list retrieval.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query and returns product read models sorted by name.
func (h GetAllProductsQueryHandler) Handle(ctx context.Context, query GetAllProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sku,
			price,
			stock_quantity,
			is_active,
			created_at
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		response, scanErr := scanProductRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
