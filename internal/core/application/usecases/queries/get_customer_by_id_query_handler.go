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

// GetCustomerByIDQueryHandler retrieves a single customer from the database.
type GetCustomerByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByIDQueryHandler creates a handler for single customer retrieval.
func NewGetCustomerByIDQueryHandler(db *gorm.DB) GetCustomerByIDQueryHandler {
	return GetCustomerByIDQueryHandler{db: db}
}

// Handle executes the query and returns the customer read model.
func (h GetCustomerByIDQueryHandler) Handle(ctx context.Context, query GetCustomerByIDQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			address,
			created_at
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row()

	response, err := scanCustomerRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerResponse{}, errs.NewObjectNotFoundError("customer", query.CustomerID().String())
		}
		return CustomerResponse{}, err
	}

	return response, nil
}

// scanCustomerRow maps one customers row into the read model.
func scanCustomerRow(row rowScanner) (CustomerResponse, error) {
	var (
		id       uuid.UUID
		response CustomerResponse
	)

	err := row.Scan(&id, &response.Name, &response.Email, &response.Phone, &response.Address, &response.CreatedAt)
	if err != nil {
		return CustomerResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerResponse{}, err
	}
	response.ID = customerID

	return response, nil
}
