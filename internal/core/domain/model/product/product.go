// Package product provides the Product entity referenced by order line items.
// Products carry catalog data (name, SKU, price, stock); order items
// reference products by ID only.
package product

import (
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a catalog item that can appear on orders.
//
// Invariants:
//   - name and SKU are non-empty
//   - price is zero or positive
//   - stock quantity is zero or positive
type Product struct {
	id            kernel.UUID
	name          string
	sku           string
	price         decimal.Decimal
	stockQuantity int
	isActive      bool
	createdAt     time.Time
	isConstructed bool
}

// NewProduct creates a Product with a generated identifier.
func NewProduct(name, sku string, price decimal.Decimal, stockQuantity int, isActive bool) (*Product, error) {
	p := &Product{
		id:            kernel.NewUUID(),
		isActive:      isActive,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setSku(sku),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id kernel.UUID, name, sku string, price decimal.Decimal, stockQuantity int, isActive bool, createdAt time.Time) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	p := &Product{
		id:            id,
		isActive:      isActive,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setSku(sku),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Sku returns the product's stock keeping unit code.
func (p *Product) Sku() string {
	return p.sku
}

// Price returns the product's catalog price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// StockQuantity returns the number of units in stock.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// IsActive reports whether the product is available for ordering.
func (p *Product) IsActive() bool {
	return p.isActive
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// ApplyChanges applies the provided fields, leaving nil fields unchanged.
func (p *Product) ApplyChanges(name, sku *string, price *decimal.Decimal, stockQuantity *int, isActive *bool) error {
	if name != nil {
		if err := p.setName(*name); err != nil {
			return err
		}
	}
	if sku != nil {
		if err := p.setSku(*sku); err != nil {
			return err
		}
	}
	if price != nil {
		if err := p.setPrice(*price); err != nil {
			return err
		}
	}
	if stockQuantity != nil {
		if err := p.setStockQuantity(*stockQuantity); err != nil {
			return err
		}
	}
	if isActive != nil {
		p.isActive = *isActive
	}
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setSku(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("price must be greater or equal to 0, got %s", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("stock quantity must be greater or equal to 0, got %d", stockQuantity))
	}
	p.stockQuantity = stockQuantity
	return nil
}
