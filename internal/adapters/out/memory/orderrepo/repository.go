// Package orderrepo implements an in-memory order repository.
package orderrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/ports"
	"quickcommerce/internal/pkg/errs"
)

var _ ports.OrderRepository = (*Repository)(nil)

// Repository stores order aggregates in process memory.
// Aggregates are stored and handed out as copies, so a caller mutating a
// returned aggregate never affects the stored state until it writes the
// change back.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]order.Order
}

// NewRepository creates an empty in-memory order repository.
func NewRepository() *Repository {
	return &Repository{
		orders: make(map[int64]order.Order),
	}
}

// Add stores a new order aggregate.
// Returns an error when the order is invalid or the id is taken.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"id is invalid",
			fmt.Errorf("order %d already exists", aggregate.ID()),
		)
	}

	r.orders[aggregate.ID()] = *aggregate
	return nil
}

// Update replaces the stored state of an existing order aggregate.
// Returns an errs.ObjectNotFoundError when the order was never added.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.orders[aggregate.ID()] = *aggregate
	return nil
}

// Get retrieves an order snapshot by id.
// Returns an errs.ObjectNotFoundError when no such order exists.
func (r *Repository) Get(_ context.Context, id int64) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return &stored, nil
}

// GetAllActive retrieves snapshots of every non-terminal order ordered by id.
func (r *Repository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]*order.Order, 0)
	for _, stored := range r.orders {
		if stored.Status().IsTerminal() {
			continue
		}
		clone := stored
		active = append(active, &clone)
	}

	sort.Slice(active, func(i, j int) bool { return active[i].ID() < active[j].ID() })
	return active, nil
}
