// Package ports defines repository and infrastructure interfaces for the
// order management domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and removing orders together
// with their line items.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// including added, changed and removed line items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all orders with their line items.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingBefore retrieves pending orders created before the given
	// cutoff. Used by the stale order cleanup job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete removes an order and its line items from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
