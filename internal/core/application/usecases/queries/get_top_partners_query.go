package queries

import (
	"errors"

	"quickcommerce/internal/pkg/guard"
)

var (
	ErrGetTopPartnersQueryIsNotConstructed = errors.New(
		"GetTopPartnersQuery must be created via NewGetTopPartnersQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// GetTopPartnersQuery retrieves the partner leaderboard.
// Partners rank by completed deliveries, ties break on average rating.
//
// Example:
//
//	query, _ := NewGetTopPartnersQuery(5)
//	top, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve leaderboard: %w", err)
//	}
//	for i, p := range top {
//	    fmt.Printf("%d. %s: %d deliveries (%.1f)\n", i+1, p.Name, p.TotalDeliveries, p.AverageRating)
//	}
type GetTopPartnersQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetTopPartnersQuery creates a leaderboard query returning at most
// limit partners. Validates that limit is positive.
func NewGetTopPartnersQuery(limit int) (GetTopPartnersQuery, error) {
	if limit <= 0 {
		return GetTopPartnersQuery{}, ErrLimitIsInvalid
	}

	return GetTopPartnersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTopPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetTopPartnersQueryIsNotConstructed)
}

// Limit returns the maximum number of partners to return.
func (q GetTopPartnersQuery) Limit() int {
	return q.limit
}
