package queries

import (
	"context"

	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/ports"
)

// GetOrderStatusQueryHandler retrieves a single order's state.
// Reads from the repository without entering the transaction lock, the
// repository hands out isolated snapshots.
type GetOrderStatusQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
func NewGetOrderStatusQueryHandler(orders ports.OrderRepository) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{orders: orders}
}

// Handle executes the query.
// Returns an errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	found, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return toOrderResponse(found), nil
}

func toOrderResponse(o *order.Order) GetOrderStatusQueryResponse {
	return GetOrderStatusQueryResponse{
		ID:                o.ID(),
		CustomerID:        o.CustomerID(),
		ItemName:          o.ItemName(),
		Status:            o.Status(),
		AssignedPartnerID: o.AssignedPartnerID(),
		CreatedAt:         o.CreatedAt(),
		PickedUpAt:        o.PickedUpAt(),
		DeliveredAt:       o.DeliveredAt(),
	}
}
