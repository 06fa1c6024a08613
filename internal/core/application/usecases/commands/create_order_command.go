package commands

import (
	"errors"

	"quickcommerce/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsInvalid = errors.New("customer id must be greater than 0")
	ErrItemNameIsRequired  = errors.New("item name is required")
)

// CreateOrderCommand represents a request to place a new order for a customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, "Milk and bread")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d created and awaiting partner assignment", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	itemName   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer id is positive and the item name is not empty.
func NewCreateOrderCommand(customerID int64, itemName string) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setItemName(itemName),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the customer placing the order.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// ItemName returns the description of the ordered item.
func (c CreateOrderCommand) ItemName() string {
	return c.itemName
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}
