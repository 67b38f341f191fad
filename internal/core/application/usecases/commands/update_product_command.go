package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a partial update of a product.
// Nil fields keep the product's current values.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          *string
	sku           *string
	price         *decimal.Decimal
	stockQuantity *int
	isActive      *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name *string,
	sku *string,
	price *decimal.Decimal,
	stockQuantity *int,
	isActive *bool,
) (UpdateProductCommand, error) {
	productCommand := UpdateProductCommand{
		name:          name,
		sku:           sku,
		price:         price,
		stockQuantity: stockQuantity,
		isActive:      isActive,
		guard:         guard.NewConstructorGuard(),
	}

	if err := productCommand.setProductID(productID); err != nil {
		return UpdateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being updated.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new name, nil when unchanged.
func (c UpdateProductCommand) Name() *string {
	return c.name
}

// Sku returns the new stock keeping unit code, nil when unchanged.
func (c UpdateProductCommand) Sku() *string {
	return c.sku
}

// Price returns the new price, nil when unchanged.
func (c UpdateProductCommand) Price() *decimal.Decimal {
	return c.price
}

// StockQuantity returns the new stock level, nil when unchanged.
func (c UpdateProductCommand) StockQuantity() *int {
	return c.stockQuantity
}

// IsActive returns the new availability flag, nil when unchanged.
func (c UpdateProductCommand) IsActive() *bool {
	return c.isActive
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}

	c.productID = productID
	return nil
}
