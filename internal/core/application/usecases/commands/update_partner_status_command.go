package commands

import (
	"errors"

	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/pkg/guard"
)

var ErrUpdatePartnerStatusCommandIsNotConstructed = errors.New(
	"UpdatePartnerStatusCommand must be created via NewUpdatePartnerStatusCommand constructor",
)

// UpdatePartnerStatusCommand represents a manual partner availability
// change, such as going offline at the end of a shift.
type UpdatePartnerStatusCommand struct { //nolint:recvcheck //using for validation
	partnerID int64
	status    partner.Status

	guard guard.ConstructorGuard
}

// NewUpdatePartnerStatusCommand creates a command to change a partner's status.
// Validates that the partner id is positive and the status is a valid value.
// Whether the transition itself is allowed is decided by the aggregate.
func NewUpdatePartnerStatusCommand(partnerID int64, status partner.Status) (UpdatePartnerStatusCommand, error) {
	command := UpdatePartnerStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(partnerID),
		command.setStatus(status),
	); err != nil {
		return UpdatePartnerStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerStatusCommandIsNotConstructed)
}

// PartnerID returns the id of the partner changing status.
func (c UpdatePartnerStatusCommand) PartnerID() int64 {
	return c.partnerID
}

// Status returns the requested availability status.
func (c UpdatePartnerStatusCommand) Status() partner.Status {
	return c.status
}

func (c *UpdatePartnerStatusCommand) setPartnerID(partnerID int64) error {
	if partnerID <= 0 {
		return ErrPartnerIDIsInvalid
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdatePartnerStatusCommand) setStatus(status partner.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
