package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllCustomersQueryHandler retrieves all customers from the database.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer list retrieval.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query and returns customer read models sorted by name.
func (h GetAllCustomersQueryHandler) Handle(ctx context.Context, query GetAllCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			address,
			created_at
		FROM customers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
		response, scanErr := scanCustomerRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		customers = append(customers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
