package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product entities.
type ProductRepository interface {
	// Add persists a new product to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Delete removes a product from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
