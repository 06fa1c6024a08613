package commands

import (
	"context"

	"quickcommerce/internal/core/ports"
)

// CompleteOrderCommandHandler handles the business logic for delivery
// completion. The order moves to Delivered, the partner returns to
// Available with its delivery counter incremented and, when the customer
// left a rating, the rating is recorded. All changes commit atomically.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewCompleteOrderCommandHandler creates a handler for delivery completion operations.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery completion command.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	deliveredOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actingPartner, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	assignedTo := deliveredOrder.AssignedPartnerID()
	if assignedTo == nil || *assignedTo != actingPartner.ID() {
		return ErrOrderNotAssignedToPartner
	}

	if err = deliveredOrder.Deliver(); err != nil {
		return err
	}

	if err = actingPartner.CompleteDelivery(); err != nil {
		return err
	}

	if rating := cmd.Rating(); rating != nil {
		actingPartner.AddRating(*rating)
	}

	if err = uow.OrderRepository().Update(ctx, deliveredOrder); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Update(ctx, actingPartner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderDelivered(ctx, deliveredOrder, actingPartner)

	return nil
}
