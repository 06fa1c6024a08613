package order

import (
	"errors"
	"fmt"
	"time"

	"quickcommerce/internal/pkg/errs"
	"quickcommerce/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrItemNameIsRequired is returned when attempting to create an order without an item name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("itemName")
	// ErrIDIsRequired is returned when attempting to create an order with a non-positive id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("id")
	// ErrCustomerIDIsRequired is returned when attempting to create an order with a non-positive customer id.
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customerID")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through assignment and
// pickup to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a positive unique identifier and customer id
//   - Item name must be non-empty
//   - Status transitions follow the defined state machine
//   - A partner is recorded exactly when the order leaves Pending via assignment
//   - Can only be created through NewOrder constructor
type Order struct {
	// id is the unique identifier for the order
	id int64

	// customerID identifies the customer who placed the order
	customerID int64

	// itemName describes what is being delivered
	itemName string

	// status represents the current state in the order lifecycle
	status Status

	// assignedPartnerID is the delivery partner's id (nil if unassigned)
	assignedPartnerID *int64

	// createdAt is when the order was placed
	createdAt time.Time

	// pickedUpAt is when the partner collected the order (nil before pickup)
	pickedUpAt *time.Time

	// deliveredAt is when the order reached the customer (nil before delivery)
	deliveredAt *time.Time

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
// The order starts in Pending status with no partner assigned and the
// creation time set to now.
//
// Parameters:
//   - id: Unique identifier for the order (must be positive)
//   - customerID: The customer placing the order (must be positive)
//   - itemName: Description of the delivered item (must be non-empty)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewOrder(id int64, customerID int64, itemName string) (*Order, error) {
	order := &Order{
		status:    Pending,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItemName(itemName),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return guard.ErrDefaultConstructorGuard
	}
	return o.guard.Validate(nil)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// ItemName returns the description of the delivered item.
func (o *Order) ItemName() string {
	return o.itemName
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedPartnerID returns the assigned delivery partner's id.
// Returns nil if no partner has been assigned. The partner id is kept
// after cancellation so the freed partner can still be identified.
func (o *Order) AssignedPartnerID() *int64 {
	return o.assignedPartnerID
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PickedUpAt returns when the partner collected the order.
// Returns nil before pickup.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns when the order reached the customer.
// Returns nil before delivery.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Assign assigns the order to a delivery partner and moves it to Assigned.
//
// Business rules:
//   - The partner id must be positive
//   - The order must be Pending
//
// Returns:
//   - nil on successful assignment
//   - error if the partner id is invalid or the transition is not allowed
func (o *Order) Assign(partnerID int64) error {
	if partnerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"partnerID is invalid",
			fmt.Errorf("%d is not a valid partner id", partnerID),
		)
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	id := partnerID
	o.status = newStatus
	o.assignedPartnerID = &id
	return nil
}

// PickUp marks the order as collected by its partner and records the
// pickup time.
//
// Returns:
//   - nil on success
//   - error if the order is not Assigned
func (o *Order) PickUp() error {
	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.pickedUpAt = &now
	return nil
}

// Deliver marks the order as delivered to the customer and records
// the delivery time. Delivered is a final state.
//
// Returns:
//   - nil on success
//   - error if the order is not PickedUp
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Cancel marks the order as cancelled. Cancelled is a final state.
// The assigned partner id, when present, is kept so the caller can
// free the partner.
//
// Returns:
//   - nil on success
//   - error if the order was already picked up or is terminal
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return ErrIDIsRequired
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsRequired
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}
	o.itemName = itemName
	return nil
}
