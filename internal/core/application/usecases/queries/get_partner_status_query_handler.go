package queries

import (
	"context"

	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/core/ports"
)

// GetPartnerStatusQueryHandler retrieves a single partner's state.
type GetPartnerStatusQueryHandler struct {
	partners ports.PartnerRepository
}

// NewGetPartnerStatusQueryHandler creates a handler for partner status queries.
func NewGetPartnerStatusQueryHandler(partners ports.PartnerRepository) GetPartnerStatusQueryHandler {
	return GetPartnerStatusQueryHandler{partners: partners}
}

// Handle executes the query.
// Returns an errs.ObjectNotFoundError when the partner does not exist.
func (h GetPartnerStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerStatusQuery,
) (GetPartnerStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPartnerStatusQueryResponse{}, err
	}

	found, err := h.partners.Get(ctx, query.PartnerID())
	if err != nil {
		return GetPartnerStatusQueryResponse{}, err
	}

	return toPartnerResponse(found), nil
}

func toPartnerResponse(p *partner.Partner) GetPartnerStatusQueryResponse {
	return GetPartnerStatusQueryResponse{
		ID:              p.ID(),
		Name:            p.Name(),
		Phone:           p.Phone(),
		VehicleNumber:   p.VehicleNumber(),
		Status:          p.Status(),
		CurrentOrderID:  p.CurrentOrderID(),
		TotalDeliveries: p.TotalDeliveries(),
		AverageRating:   p.AverageRating(),
	}
}
