package partner

import (
	"errors"
	"fmt"

	"quickcommerce/internal/pkg/errs"
	"quickcommerce/internal/pkg/guard"
)

const (
	// minRating is the lowest rating a customer can leave for a delivery.
	minRating = 1
	// maxRating is the highest rating a customer can leave for a delivery.
	maxRating = 5
)

// Domain errors for partner operations.
var (
	// ErrNameIsRequired is returned when attempting to create a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrIDIsRequired is returned when attempting to create a partner with a non-positive id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("id")
)

// Partner represents a delivery partner in the system.
// It is an aggregate root that manages partner identity, availability
// and the rating earned across completed deliveries.
//
// Business rules:
//   - Must have a positive unique identifier and a non-empty name; phone
//     and vehicle number are optional contact details
//   - A partner is Busy if and only if it has a current order
//   - Busy is entered only by AssignOrder and left only by Release or CompleteDelivery
//   - Manual status changes are limited to Available <-> Offline
//   - Ratings outside [1, 5] are silently discarded
//   - Can only be created through NewPartner constructor
type Partner struct {
	// id uniquely identifies the partner
	id int64
	// name is the human-readable name of the partner
	name string
	// phone is the contact phone number of the partner
	phone string
	// vehicleNumber is the registration number of the delivery vehicle
	vehicleNumber string
	// status is the current availability state
	status Status
	// currentOrderID is the order being delivered (nil when not Busy)
	currentOrderID *int64
	// totalDeliveries counts completed deliveries
	totalDeliveries int
	// totalRatingSum accumulates accepted ratings
	totalRatingSum float64
	// ratingCount counts accepted ratings
	ratingCount int
	// guard ensures the partner was properly constructed
	guard guard.ConstructorGuard
}

// NewPartner creates a new Partner with the specified parameters.
// This is the only way to create a valid Partner instance.
// New partners start in Available status with no order, no deliveries
// and no ratings.
//
// Parameters:
//   - id: Unique identifier for the partner (must be positive)
//   - name: Human-readable name (must be non-empty)
//   - phone: Contact phone number, empty when the partner gave none
//   - vehicleNumber: Vehicle registration number, empty when unknown
//
// Returns:
//   - *Partner: The created partner if all validations pass
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewPartner(id int64, name string, phone string, vehicleNumber string) (*Partner, error) {
	partner := &Partner{
		phone:         phone,
		vehicleNumber: vehicleNumber,
		status:        Available,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partner.setID(id),
		partner.setName(name),
	); err != nil {
		return nil, err
	}

	return partner, nil
}

// Validate ensures the Partner instance was properly constructed through NewPartner.
func (p *Partner) Validate() error {
	if p == nil {
		return guard.ErrDefaultConstructorGuard
	}
	return p.guard.Validate(nil)
}

// IsEqual compares two partners by their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id == other.id
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() int64 {
	return p.id
}

// Name returns the partner's name.
func (p *Partner) Name() string {
	return p.name
}

// Phone returns the partner's contact phone number.
func (p *Partner) Phone() string {
	return p.phone
}

// VehicleNumber returns the registration number of the partner's vehicle.
func (p *Partner) VehicleNumber() string {
	return p.vehicleNumber
}

// Status returns the partner's current availability status.
func (p *Partner) Status() Status {
	return p.status
}

// CurrentOrderID returns the id of the order the partner is delivering.
// Returns nil when the partner is not Busy.
func (p *Partner) CurrentOrderID() *int64 {
	return p.currentOrderID
}

// TotalDeliveries returns the number of deliveries the partner has completed.
func (p *Partner) TotalDeliveries() int {
	return p.totalDeliveries
}

// AverageRating returns the mean of all accepted ratings.
// Returns 0 when the partner has not been rated yet.
func (p *Partner) AverageRating() float64 {
	if p.ratingCount == 0 {
		return 0
	}
	return p.totalRatingSum / float64(p.ratingCount)
}

// AssignOrder puts the partner to work on the given order.
//
// Business rules:
//   - The partner must be Available
//   - The partner becomes Busy with the order as its current order
//
// Returns:
//   - nil on successful assignment
//   - error if the partner is not Available
func (p *Partner) AssignOrder(orderID int64) error {
	if p.status != Available {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign an order", p.status.String()),
		)
	}

	id := orderID
	p.status = Busy
	p.currentOrderID = &id
	return nil
}

// Release frees the partner from its current order without counting
// a completed delivery. Used when the order in flight is cancelled.
//
// Returns:
//   - nil on success
//   - error if the partner is not Busy
func (p *Partner) Release() error {
	if p.status != Busy {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", p.status.String()),
		)
	}

	p.status = Available
	p.currentOrderID = nil
	return nil
}

// CompleteDelivery frees the partner from its current order and
// increments the completed deliveries counter.
//
// Returns:
//   - nil on success
//   - error if the partner is not Busy
func (p *Partner) CompleteDelivery() error {
	if p.status != Busy {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete a delivery", p.status.String()),
		)
	}

	p.status = Available
	p.currentOrderID = nil
	p.totalDeliveries++
	return nil
}

// AddRating records a rating left by a customer.
// Ratings outside [1, 5] are silently discarded.
func (p *Partner) AddRating(rating int) {
	if rating < minRating || rating > maxRating {
		return
	}
	p.totalRatingSum += float64(rating)
	p.ratingCount++
}

// ChangeStatus switches the partner between Available and Offline.
//
// Business rules:
//   - Busy cannot be entered or left manually, it is owned by the order lifecycle
//   - The new status must be Available or Offline
//
// Returns:
//   - nil on success
//   - error if the partner is Busy or the target status is not allowed
func (p *Partner) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if p.status == Busy {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot be changed while delivering an order", p.status.String()),
		)
	}

	if newStatus == Busy {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot be set manually", newStatus.String()),
		)
	}

	p.status = newStatus
	return nil
}

func (p *Partner) setID(id int64) error {
	if id <= 0 {
		return ErrIDIsRequired
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
