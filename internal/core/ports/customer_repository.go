package ports

import (
	"context"

	"quickcommerce/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*customer.Customer, error)
}
