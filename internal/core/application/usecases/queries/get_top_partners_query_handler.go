package queries

import (
	"context"
	"sort"

	"quickcommerce/internal/core/ports"
)

// GetTopPartnersQueryHandler builds the partner leaderboard.
// Partners are ordered by completed deliveries descending, then by
// average rating descending. The sort is stable so equally ranked
// partners keep their repository ordering (ascending id).
type GetTopPartnersQueryHandler struct {
	partners ports.PartnerRepository
}

// NewGetTopPartnersQueryHandler creates a handler for leaderboard queries.
func NewGetTopPartnersQueryHandler(partners ports.PartnerRepository) GetTopPartnersQueryHandler {
	return GetTopPartnersQueryHandler{partners: partners}
}

// Handle executes the query.
// Returns at most query.Limit() partners, fewer when the system has
// fewer partners registered.
func (h GetTopPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetTopPartnersQuery,
) ([]GetPartnerStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.partners.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]GetPartnerStatusQueryResponse, 0, len(all))
	for _, p := range all {
		ranked = append(ranked, toPartnerResponse(p))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalDeliveries != ranked[j].TotalDeliveries {
			return ranked[i].TotalDeliveries > ranked[j].TotalDeliveries
		}
		return ranked[i].AverageRating > ranked[j].AverageRating
	})

	if len(ranked) > query.Limit() {
		ranked = ranked[:query.Limit()]
	}

	return ranked, nil
}
