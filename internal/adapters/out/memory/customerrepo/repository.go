// Package customerrepo implements an in-memory customer repository.
package customerrepo

import (
	"context"
	"fmt"
	"sync"

	"quickcommerce/internal/core/domain/model/customer"
	"quickcommerce/internal/core/ports"
	"quickcommerce/internal/pkg/errs"
)

var _ ports.CustomerRepository = (*Repository)(nil)

// Repository stores customer aggregates in process memory.
// Aggregates are stored and handed out as copies, so a caller mutating a
// returned aggregate never affects the stored state until it writes the
// change back.
type Repository struct {
	mu        sync.RWMutex
	customers map[int64]customer.Customer
}

// NewRepository creates an empty in-memory customer repository.
func NewRepository() *Repository {
	return &Repository{
		customers: make(map[int64]customer.Customer),
	}
}

// Add stores a new customer aggregate.
// Returns an error when the customer is invalid or the id is taken.
func (r *Repository) Add(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"id is invalid",
			fmt.Errorf("customer %d already exists", aggregate.ID()),
		)
	}

	r.customers[aggregate.ID()] = *aggregate
	return nil
}

// Get retrieves a customer snapshot by id.
// Returns an errs.ObjectNotFoundError when no such customer exists.
func (r *Repository) Get(_ context.Context, id int64) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.customers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id)
	}

	return &stored, nil
}
