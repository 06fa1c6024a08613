// Package partnerrepo implements an in-memory delivery partner repository.
package partnerrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/core/ports"
	"quickcommerce/internal/pkg/errs"
)

var _ ports.PartnerRepository = (*Repository)(nil)

// Repository stores partner aggregates in process memory.
// Aggregates are stored and handed out as copies, so a caller mutating a
// returned aggregate never affects the stored state until it writes the
// change back.
type Repository struct {
	mu       sync.RWMutex
	partners map[int64]partner.Partner
}

// NewRepository creates an empty in-memory partner repository.
func NewRepository() *Repository {
	return &Repository{
		partners: make(map[int64]partner.Partner),
	}
}

// Add stores a new partner aggregate.
// Returns an error when the partner is invalid or the id is taken.
func (r *Repository) Add(_ context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.partners[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"id is invalid",
			fmt.Errorf("partner %d already exists", aggregate.ID()),
		)
	}

	r.partners[aggregate.ID()] = *aggregate
	return nil
}

// Update replaces the stored state of an existing partner aggregate.
// Returns an errs.ObjectNotFoundError when the partner was never added.
func (r *Repository) Update(_ context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.partners[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("partner", aggregate.ID())
	}

	r.partners[aggregate.ID()] = *aggregate
	return nil
}

// Get retrieves a partner snapshot by id.
// Returns an errs.ObjectNotFoundError when no such partner exists.
func (r *Repository) Get(_ context.Context, id int64) (*partner.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.partners[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("partner", id)
	}

	return &stored, nil
}

// GetAll retrieves snapshots of every partner ordered by id.
func (r *Repository) GetAll(_ context.Context) ([]*partner.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*partner.Partner, 0, len(r.partners))
	for _, stored := range r.partners {
		clone := stored
		all = append(all, &clone)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return all, nil
}

// GetAllAvailable retrieves snapshots of all Available partners ordered by id.
func (r *Repository) GetAllAvailable(_ context.Context) ([]*partner.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	available := make([]*partner.Partner, 0)
	for _, stored := range r.partners {
		if stored.Status() != partner.Available {
			continue
		}
		clone := stored
		available = append(available, &clone)
	}

	sort.Slice(available, func(i, j int) bool { return available[i].ID() < available[j].ID() })
	return available, nil
}
