package queries

import (
	"errors"

	"ordermanagement/internal/pkg/guard"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves every product.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve all products.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}
