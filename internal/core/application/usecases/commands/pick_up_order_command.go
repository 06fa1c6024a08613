package commands

import (
	"errors"

	"quickcommerce/internal/pkg/guard"
)

var (
	ErrPickUpOrderCommandIsNotConstructed = errors.New(
		"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
	)
	ErrPartnerIDIsInvalid = errors.New("partner id must be greater than 0")
)

// PickUpOrderCommand represents a delivery partner collecting an order
// that was assigned to them.
type PickUpOrderCommand struct { //nolint:recvcheck //using for validation
	partnerID int64
	orderID   int64

	guard guard.ConstructorGuard
}

// NewPickUpOrderCommand creates a command for a partner to pick up an order.
// Validates that both ids are positive.
func NewPickUpOrderCommand(partnerID int64, orderID int64) (PickUpOrderCommand, error) {
	command := PickUpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(partnerID),
		command.setOrderID(orderID),
	); err != nil {
		return PickUpOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

// PartnerID returns the id of the partner picking up the order.
func (c PickUpOrderCommand) PartnerID() int64 {
	return c.partnerID
}

// OrderID returns the id of the order being picked up.
func (c PickUpOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *PickUpOrderCommand) setPartnerID(partnerID int64) error {
	if partnerID <= 0 {
		return ErrPartnerIDIsInvalid
	}

	c.partnerID = partnerID
	return nil
}

func (c *PickUpOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
