package customer

import (
	"errors"

	"quickcommerce/internal/pkg/errs"
	"quickcommerce/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrIDIsRequired is returned when attempting to create a customer with a non-positive id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("id")
)

// Customer represents a person who places orders.
// It is a small aggregate root holding identity and contact details.
//
// Business rules:
//   - Must have a positive unique identifier
//   - Name must be non-empty; phone is optional contact information
//   - Can only be created through NewCustomer constructor
type Customer struct {
	// id uniquely identifies the customer
	id int64
	// name is the human-readable name of the customer
	name string
	// phone is the contact phone number used for notifications, may be empty
	phone string
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the specified parameters.
// This is the only way to create a valid Customer instance.
//
// Parameters:
//   - id: Unique identifier for the customer (must be positive)
//   - name: Human-readable name (must be non-empty)
//   - phone: Contact phone number, empty when the customer gave none
//
// Returns:
//   - *Customer: The created customer if all validations pass
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewCustomer(id int64, name string, phone string) (*Customer, error) {
	customer := &Customer{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return guard.ErrDefaultConstructorGuard
	}
	return c.guard.Validate(nil)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id == other.id
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() int64 {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// SetPhone updates the customer's contact phone number.
// An empty value clears it.
func (c *Customer) SetPhone(phone string) {
	c.phone = phone
}

func (c *Customer) setID(id int64) error {
	if id <= 0 {
		return ErrIDIsRequired
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
