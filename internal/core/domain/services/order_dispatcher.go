package services

import (
	"errors"
	"fmt"

	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/pkg/errs"
)

// ErrNoPartnerAvailable is returned when no delivery partner can take an
// order. This occurs when either no partners are provided or none of the
// provided partners is in the Available status.
var ErrNoPartnerAvailable = errors.New("no partner available")

// OrderDispatcher is a domain service responsible for matching a pending
// order with an available delivery partner.
//
// Key responsibilities:
//   - Validating orders before dispatch
//   - Selecting the first available partner
//   - Ensuring order and partner state change together
//
// Business rules:
//   - Orders must be valid and Pending before dispatch
//   - Only partners in Available status are considered
//   - Partners are considered in the order they are provided
//
// Example usage:
//
//	dispatcher := NewOrderDispatcher()
//	assigned, err := dispatcher.Dispatch(pendingOrder, partners)
//	if errors.Is(err, ErrNoPartnerAvailable) {
//	    // Requeue the order and retry later
//	    return
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch finds an available partner for the given order and executes the
// assignment on both aggregates.
//
// Parameters:
//   - o: The order to be dispatched (must be valid and Pending)
//   - partners: Slice of partners to consider, in preference order
//
// Returns:
//   - *partner.Partner: The partner assigned to the order
//   - error: ErrNoPartnerAvailable if no partner can take the order,
//     or validation/assignment errors
func (d OrderDispatcher) Dispatch(o *order.Order, partners []*partner.Partner) (*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.Status() != order.Pending {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", o.Status().String()),
		)
	}

	selected, err := d.findAvailablePartner(partners)
	if err != nil {
		return nil, err
	}

	if err = selected.AssignOrder(o.ID()); err != nil {
		return nil, err
	}

	if err = o.Assign(selected.ID()); err != nil {
		return nil, err
	}

	return selected, nil
}

// findAvailablePartner returns the first partner in Available status.
func (d OrderDispatcher) findAvailablePartner(partners []*partner.Partner) (*partner.Partner, error) {
	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if p.Status() == partner.Available {
			return p, nil
		}
	}

	return nil, ErrNoPartnerAvailable
}
