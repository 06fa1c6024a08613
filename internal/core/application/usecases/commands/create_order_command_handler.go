package commands

import (
	"context"

	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the customer exists, allocates an order id from the order
// sequence and persists the order in Pending status. After the commit the
// order enters the dispatch queue and, when auto-cancel is enabled, gets
// an expiry timer armed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, seq, queue, notifier, scheduler)
//	cmd, _ := NewCreateOrderCommand(customerID, "Eggs")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and queued for partner assignment
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sequence   Sequence
	queue      DispatchQueue
	notifier   ports.Notifier
	scheduler  ExpiryScheduler
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// scheduler may be nil when order auto-cancellation is disabled.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sequence Sequence,
	queue DispatchQueue,
	notifier ports.Notifier,
	scheduler ExpiryScheduler,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
		queue:      queue,
		notifier:   notifier,
		scheduler:  scheduler,
	}
}

// Handle processes the order creation command.
// The customer must exist, otherwise an errs.ObjectNotFoundError is
// returned. The order is queued for assignment only after a successful
// commit so the assignment worker never sees an unpersisted order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(h.sequence.Next(ctx), cmd.CustomerID(), cmd.ItemName())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.queue.Offer(newOrder.ID())
	h.notifier.NotifyOrderCreated(ctx, newOrder)

	if h.scheduler != nil {
		h.scheduler.Schedule(newOrder.ID())
	}

	return newOrder, nil
}
