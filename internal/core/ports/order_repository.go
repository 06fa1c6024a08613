package ports

import (
	"context"

	"quickcommerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllActive retrieves every order in a non-terminal status ordered by id.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
