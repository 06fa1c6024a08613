package ports

import (
	"context"

	"quickcommerce/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates. Provides methods for storing, retrieving, and querying
// partners based on their availability.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	// The partner must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate.
	// The partner must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*partner.Partner, error)

	// GetAll retrieves every registered partner ordered by id.
	GetAll(ctx context.Context) ([]*partner.Partner, error)

	// GetAllAvailable retrieves all partners in Available status ordered by id.
	// Used by the assignment workflow to find candidates for a pending order.
	GetAllAvailable(ctx context.Context) ([]*partner.Partner, error)
}
