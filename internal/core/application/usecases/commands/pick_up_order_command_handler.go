package commands

import (
	"context"
	"errors"

	"quickcommerce/internal/core/ports"
)

// ErrOrderNotAssignedToPartner is returned when a partner attempts to pick
// up or complete an order that is not assigned to them.
var ErrOrderNotAssignedToPartner = errors.New("order is not assigned to this partner")

// PickUpOrderCommandHandler handles the business logic for order pickup.
// The order must be Assigned and the acting partner must be the one it
// was assigned to.
type PickUpOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewPickUpOrderCommandHandler creates a handler for order pickup operations.
func NewPickUpOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order pickup command.
func (h *PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) error {
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

	pickedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actingPartner, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	assignedTo := pickedOrder.AssignedPartnerID()
	if assignedTo == nil || *assignedTo != actingPartner.ID() {
		return ErrOrderNotAssignedToPartner
	}

	if err = pickedOrder.PickUp(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, pickedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderPickedUp(ctx, pickedOrder, actingPartner)

	return nil
}
