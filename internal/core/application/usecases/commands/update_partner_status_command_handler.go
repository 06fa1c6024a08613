package commands

import (
	"context"
	"fmt"

	"quickcommerce/internal/core/ports"
)

// UpdatePartnerStatusCommandHandler handles manual partner availability
// changes. The partner aggregate rejects changes while Busy and rejects
// Busy as a manual target.
type UpdatePartnerStatusCommandHandler struct {
	uowFactory PartnerUoWFactory
	notifier   ports.Notifier
}

// NewUpdatePartnerStatusCommandHandler creates a handler for partner status changes.
func NewUpdatePartnerStatusCommandHandler(
	uowFactory PartnerUoWFactory,
	notifier ports.Notifier,
) UpdatePartnerStatusCommandHandler {
	return UpdatePartnerStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the partner status change command.
func (h *UpdatePartnerStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerStatusCommand) error {
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

	actingPartner, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = actingPartner.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Update(ctx, actingPartner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.LogSystemEvent(ctx,
		fmt.Sprintf("Partner #%d (%s) is now %s", actingPartner.ID(), actingPartner.Name(), actingPartner.Status()))

	return nil
}
