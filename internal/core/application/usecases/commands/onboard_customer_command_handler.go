package commands

import (
	"context"
	"fmt"

	"quickcommerce/internal/core/domain/model/customer"
	"quickcommerce/internal/core/ports"
)

// OnboardCustomerCommandHandler handles the business logic for customer
// registration. Allocates a customer id from the customer sequence and
// persists the new aggregate.
type OnboardCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	sequence   Sequence
	notifier   ports.Notifier
}

// NewOnboardCustomerCommandHandler creates a handler for customer registration.
func NewOnboardCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	sequence Sequence,
	notifier ports.Notifier,
) OnboardCustomerCommandHandler {
	return OnboardCustomerCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
		notifier:   notifier,
	}
}

// Handle processes the customer registration command.
// Returns the newly created customer on success.
func (h *OnboardCustomerCommandHandler) Handle(ctx context.Context, cmd OnboardCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newCustomer, err := customer.NewCustomer(h.sequence.Next(ctx), cmd.Name(), cmd.Phone())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, newCustomer); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.LogSystemEvent(ctx,
		fmt.Sprintf("Customer #%d (%s) onboarded", newCustomer.ID(), newCustomer.Name()))

	return newCustomer, nil
}
