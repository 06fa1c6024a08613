package commands

import (
	"context"
	"fmt"

	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/core/ports"
)

// OnboardPartnerCommandHandler handles the business logic for delivery
// partner registration. Allocates a partner id from the partner sequence
// and persists the new aggregate in Available status.
type OnboardPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
	sequence   Sequence
	notifier   ports.Notifier
}

// NewOnboardPartnerCommandHandler creates a handler for partner registration.
func NewOnboardPartnerCommandHandler(
	uowFactory PartnerUoWFactory,
	sequence Sequence,
	notifier ports.Notifier,
) OnboardPartnerCommandHandler {
	return OnboardPartnerCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
		notifier:   notifier,
	}
}

// Handle processes the partner registration command.
// Returns the newly created partner on success.
func (h *OnboardPartnerCommandHandler) Handle(ctx context.Context, cmd OnboardPartnerCommand) (*partner.Partner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newPartner, err := partner.NewPartner(h.sequence.Next(ctx), cmd.Name(), cmd.Phone(), cmd.VehicleNumber())
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

	if err = uow.PartnerRepository().Add(ctx, newPartner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.LogSystemEvent(ctx,
		fmt.Sprintf("Partner #%d (%s) onboarded and available", newPartner.ID(), newPartner.Name()))

	return newPartner, nil
}
