package commands

import (
	"errors"

	"quickcommerce/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a delivery partner completing a delivery,
// optionally carrying a rating left by the customer. Ratings outside the
// accepted range are discarded by the partner aggregate, not rejected here.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	partnerID int64
	orderID   int64
	rating    *int

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command for a partner to complete a delivery.
// Validates that both ids are positive. rating may be nil when the customer
// left no rating.
func NewCompleteOrderCommand(partnerID int64, orderID int64, rating *int) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(partnerID),
		command.setOrderID(orderID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	command.setRating(rating)

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// PartnerID returns the id of the partner completing the delivery.
func (c CompleteOrderCommand) PartnerID() int64 {
	return c.partnerID
}

// OrderID returns the id of the delivered order.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}

// Rating returns the rating left by the customer, or nil when none was left.
func (c CompleteOrderCommand) Rating() *int {
	return c.rating
}

func (c *CompleteOrderCommand) setPartnerID(partnerID int64) error {
	if partnerID <= 0 {
		return ErrPartnerIDIsInvalid
	}

	c.partnerID = partnerID
	return nil
}

func (c *CompleteOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setRating(rating *int) {
	if rating == nil {
		return
	}

	value := *rating
	c.rating = &value
}
