// Package memory provides the in-memory persistence adapter.
// A single mutex shared by all unit of work instances serializes every
// state transition in the system, which is what keeps queue handling,
// cancellation and assignment free of races. Repositories hand out
// aggregate snapshots, so read queries stay consistent without taking
// the transition lock.
package memory

import (
	"context"
	"errors"
	"sync"

	"quickcommerce/internal/core/ports"
)

// ErrNoActiveTransaction is returned when Commit or Rollback is called
// without a preceding Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

var _ ports.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)

// UnitOfWorkFactory creates unit of work instances backed by shared
// in-memory repositories and one global transition lock.
type UnitOfWorkFactory struct {
	mu        *sync.Mutex
	customers ports.CustomerRepository
	partners  ports.PartnerRepository
	orders    ports.OrderRepository
}

// NewUnitOfWorkFactory creates a factory over the given repositories.
// Every unit of work created by the same factory contends on the same lock.
func NewUnitOfWorkFactory(
	customers ports.CustomerRepository,
	partners ports.PartnerRepository,
	orders ports.OrderRepository,
) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		mu:        &sync.Mutex{},
		customers: customers,
		partners:  partners,
		orders:    orders,
	}
}

// Create returns a fresh unit of work. Each instance is for a single
// transaction and is not safe for concurrent use.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{factory: f}
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork serializes a business transaction against all others by
// holding the factory's lock between Begin and Commit/Rollback.
//
// There is no change journal: handlers are expected to validate every
// domain transition before mutating repository state, so a rollback only
// releases the lock. This matches how the command handlers are written,
// they return before the first repository write when any check fails.
type UnitOfWork struct {
	factory   *UnitOfWorkFactory
	began     bool
	completed bool
}

// Begin acquires the global transition lock.
// Begin on an already started unit of work is an error.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.began && !u.completed {
		return errors.New("transaction already started")
	}

	u.factory.mu.Lock()
	u.began = true
	u.completed = false
	return nil
}

// Commit releases the global transition lock, making the changes visible
// as one atomic step.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.began || u.completed {
		return ErrNoActiveTransaction
	}

	u.completed = true
	u.factory.mu.Unlock()
	return nil
}

// Rollback releases the global transition lock when the transaction is
// still open. Calling Rollback after Commit returns
// ErrNoActiveTransaction, which deferred rollbacks ignore.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.began || u.completed {
		return ErrNoActiveTransaction
	}

	u.completed = true
	u.factory.mu.Unlock()
	return nil
}

// CustomerRepository returns the customer repository bound to this unit of work.
func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return u.factory.customers
}

// PartnerRepository returns the partner repository bound to this unit of work.
func (u *UnitOfWork) PartnerRepository() ports.PartnerRepository {
	return u.factory.partners
}

// OrderRepository returns the order repository bound to this unit of work.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return u.factory.orders
}
