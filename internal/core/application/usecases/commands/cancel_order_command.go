package commands

import (
	"errors"

	"quickcommerce/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
	ErrReasonIsRequired = errors.New("reason is required")
)

// CancelOrderCommand represents a request to cancel an order that has not
// been picked up yet. The reason is included in the customer notification.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Validates that the order id is positive and the reason is not empty.
func NewCancelOrderCommand(orderID int64, reason string) (CancelOrderCommand, error) {
	command := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to cancel.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the human-readable cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
