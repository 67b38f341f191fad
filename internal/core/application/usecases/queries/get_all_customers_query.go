package queries

import (
	"errors"

	"ordermanagement/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery retrieves every customer.
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a query to retrieve all customers.
func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}
