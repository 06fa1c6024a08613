package commands

import (
	"context"

	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/core/ports"
)

// CancelOrderCommandHandler handles the business logic for order
// cancellation. Only Pending and Assigned orders can be cancelled. When
// the order already had a partner assigned, the partner is released back
// to Available in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	queue      DispatchQueue
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	queue DispatchQueue,
	notifier ports.Notifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
		notifier:   notifier,
	}
}

// Handle processes the order cancellation command.
// After a successful commit the order is withdrawn from the dispatch
// queue so the assignment worker never assigns a cancelled order.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cancelledOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	var freedPartner *partner.Partner
	if partnerID := cancelledOrder.AssignedPartnerID(); partnerID != nil {
		freedPartner, err = uow.PartnerRepository().Get(ctx, *partnerID)
		if err != nil {
			return err
		}

		if err = freedPartner.Release(); err != nil {
			return err
		}

		if err = uow.PartnerRepository().Update(ctx, freedPartner); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.queue.Remove(cancelledOrder.ID())
	h.notifier.NotifyOrderCancelled(ctx, cancelledOrder, cmd.Reason())

	if freedPartner != nil {
		h.notifier.NotifyPartnerFreed(ctx, freedPartner, cancelledOrder)
	}

	return nil
}
