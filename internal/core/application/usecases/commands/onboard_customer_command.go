package commands

import (
	"errors"

	"quickcommerce/internal/pkg/guard"
)

var (
	ErrOnboardCustomerCommandIsNotConstructed = errors.New(
		"OnboardCustomerCommand must be created via NewOnboardCustomerCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// OnboardCustomerCommand represents a request to register a new customer.
type OnboardCustomerCommand struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewOnboardCustomerCommand creates a command to register a new customer.
// Validates that name is not empty; phone is optional.
func NewOnboardCustomerCommand(name string, phone string) (OnboardCustomerCommand, error) {
	command := OnboardCustomerCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return OnboardCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OnboardCustomerCommand) Validate() error {
	return c.guard.Validate(ErrOnboardCustomerCommandIsNotConstructed)
}

// Name returns the customer's name.
func (c OnboardCustomerCommand) Name() string {
	return c.name
}

// Phone returns the customer's contact phone number, empty when none was given.
func (c OnboardCustomerCommand) Phone() string {
	return c.phone
}

func (c *OnboardCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
