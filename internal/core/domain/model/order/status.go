package order

import (
	"fmt"

	"quickcommerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal states with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a delivery partner.
	Pending

	// Assigned indicates the order has been assigned to a delivery partner
	// who has not picked it up yet.
	Assigned

	// PickedUp indicates the delivery partner has collected the order
	// and is on the way to the customer.
	PickedUp

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before pickup.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, PickedUp, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is a final state.
// Terminal orders accept no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}

	return Assigned, nil
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - Assigned -> PickedUp
//
// Returns:
//   - (PickedUp, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}

	return PickedUp, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - PickedUp -> Delivered
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Deliver() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled
//
// Orders that were already picked up cannot be cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
