package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to register a new product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name          string
	sku           string
	price         decimal.Decimal
	stockQuantity int
	isActive      bool

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product.
// Price and stock bounds are enforced by the product entity; this
// constructor only checks the required string fields.
func NewCreateProductCommand(
	name string,
	sku string,
	price decimal.Decimal,
	stockQuantity int,
	isActive bool,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		price:         price,
		stockQuantity: stockQuantity,
		isActive:      isActive,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setName(name),
		productCommand.setSku(sku),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Sku returns the stock keeping unit code.
func (c CreateProductCommand) Sku() string {
	return c.sku
}

// Price returns the product price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// StockQuantity returns the initial stock level.
func (c CreateProductCommand) StockQuantity() int {
	return c.stockQuantity
}

// IsActive reports whether the product is orderable.
func (c CreateProductCommand) IsActive() bool {
	return c.isActive
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setSku(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}

	c.sku = sku
	return nil
}
