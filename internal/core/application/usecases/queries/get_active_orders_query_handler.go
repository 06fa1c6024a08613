package queries

import (
	"context"

	"quickcommerce/internal/core/ports"
)

// GetActiveOrdersQueryHandler retrieves every order in a non-terminal
// status, ordered by id.
type GetActiveOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(orders ports.OrderRepository) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{orders: orders}
}

// Handle executes the query.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active, err := h.orders.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetOrderStatusQueryResponse, 0, len(active))
	for _, o := range active {
		responses = append(responses, toOrderResponse(o))
	}

	return responses, nil
}
