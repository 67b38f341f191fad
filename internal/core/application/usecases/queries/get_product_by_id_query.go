package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetProductByIDQueryIsNotConstructed = errors.New(
	"GetProductByIDQuery must be created via NewGetProductByIDQuery constructor",
)

// GetProductByIDQuery retrieves a single product.
type GetProductByIDQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductByIDQuery creates a query for one product.
func NewGetProductByIDQuery(productID kernel.UUID) (GetProductByIDQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}

	return GetProductByIDQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetProductByIDQueryIsNotConstructed)
}

// ProductID returns the identifier of the requested product.
func (q GetProductByIDQuery) ProductID() kernel.UUID {
	return q.productID
}

// ProductResponse represents a product in the read model.
type ProductResponse struct {
	ID            kernel.UUID
	Name          string
	Sku           string
	Price         decimal.Decimal
	StockQuantity int
	IsActive      bool
	CreatedAt     time.Time
}
