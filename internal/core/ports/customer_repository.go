package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer entities.
type CustomerRepository interface {
	// Add persists a new customer to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// Delete removes a customer from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
