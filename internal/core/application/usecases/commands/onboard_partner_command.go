package commands

import (
	"errors"

	"quickcommerce/internal/pkg/guard"
)

var (
	ErrOnboardPartnerCommandIsNotConstructed = errors.New(
		"OnboardPartnerCommand must be created via NewOnboardPartnerCommand constructor",
	)
)

// OnboardPartnerCommand represents a request to register a new delivery partner.
type OnboardPartnerCommand struct { //nolint:recvcheck //using for validation
	name          string
	phone         string
	vehicleNumber string

	guard guard.ConstructorGuard
}

// NewOnboardPartnerCommand creates a command to register a new delivery partner.
// Validates that name is not empty; phone and vehicle number are optional.
func NewOnboardPartnerCommand(name string, phone string, vehicleNumber string) (OnboardPartnerCommand, error) {
	command := OnboardPartnerCommand{
		phone:         phone,
		vehicleNumber: vehicleNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return OnboardPartnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OnboardPartnerCommand) Validate() error {
	return c.guard.Validate(ErrOnboardPartnerCommandIsNotConstructed)
}

// Name returns the partner's name.
func (c OnboardPartnerCommand) Name() string {
	return c.name
}

// Phone returns the partner's contact phone number, empty when none was given.
func (c OnboardPartnerCommand) Phone() string {
	return c.phone
}

// VehicleNumber returns the partner's vehicle registration number, empty when unknown.
func (c OnboardPartnerCommand) VehicleNumber() string {
	return c.vehicleNumber
}

func (c *OnboardPartnerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
