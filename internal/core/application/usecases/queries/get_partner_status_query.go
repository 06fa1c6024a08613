package queries

import (
	"errors"

	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/pkg/guard"
)

var (
	ErrGetPartnerStatusQueryIsNotConstructed = errors.New(
		"GetPartnerStatusQuery must be created via NewGetPartnerStatusQuery constructor",
	)
	ErrPartnerIDIsInvalid = errors.New("partner id must be greater than 0")
)

// GetPartnerStatusQuery retrieves the current state of a single delivery partner.
type GetPartnerStatusQuery struct { //nolint:recvcheck //using for validation
	partnerID int64

	guard guard.ConstructorGuard
}

// NewGetPartnerStatusQuery creates a query for the state of one partner.
// Validates that the partner id is positive.
func NewGetPartnerStatusQuery(partnerID int64) (GetPartnerStatusQuery, error) {
	if partnerID <= 0 {
		return GetPartnerStatusQuery{}, ErrPartnerIDIsInvalid
	}

	return GetPartnerStatusQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerStatusQueryIsNotConstructed)
}

// PartnerID returns the id of the queried partner.
func (q GetPartnerStatusQuery) PartnerID() int64 {
	return q.partnerID
}

// GetPartnerStatusQueryResponse represents a delivery partner in the read model.
type GetPartnerStatusQueryResponse struct {
	ID              int64
	Name            string
	Phone           string
	VehicleNumber   string
	Status          partner.Status
	CurrentOrderID  *int64
	TotalDeliveries int
	AverageRating   float64
}
