// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderStatusQuery retrieves the current state of a single order.
type GetOrderStatusQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for the state of one order.
// Validates that the order id is positive.
func NewGetOrderStatusQuery(orderID int64) (GetOrderStatusQuery, error) {
	if orderID <= 0 {
		return GetOrderStatusQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the id of the queried order.
func (q GetOrderStatusQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderStatusQueryResponse represents an order in the read model.
type GetOrderStatusQueryResponse struct {
	ID                int64
	CustomerID        int64
	ItemName          string
	Status            order.Status
	AssignedPartnerID *int64
	CreatedAt         time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
}
