package ports

import (
	"context"

	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/domain/model/partner"
)

// Notifier delivers progress notifications to customers and delivery
// partners and records system events. Notification delivery is best
// effort: implementations log failures instead of returning them so a
// broken notification channel never blocks an order transition.
type Notifier interface {
	// NotifyOrderCreated tells the customer the order was accepted and
	// a partner is being looked for.
	NotifyOrderCreated(ctx context.Context, o *order.Order)

	// NotifyOrderAssigned tells the customer and the partner about the assignment.
	NotifyOrderAssigned(ctx context.Context, o *order.Order, p *partner.Partner)

	// NotifyOrderPickedUp tells the customer the partner collected the order.
	NotifyOrderPickedUp(ctx context.Context, o *order.Order, p *partner.Partner)

	// NotifyOrderDelivered tells the customer the order arrived.
	NotifyOrderDelivered(ctx context.Context, o *order.Order, p *partner.Partner)

	// NotifyOrderCancelled tells the customer the order was cancelled and why.
	NotifyOrderCancelled(ctx context.Context, o *order.Order, reason string)

	// NotifyPartnerFreed tells a partner it is available again after its
	// order in flight was cancelled.
	NotifyPartnerFreed(ctx context.Context, p *partner.Partner, o *order.Order)

	// LogSystemEvent records an operational event that is not tied to a
	// specific customer or partner.
	LogSystemEvent(ctx context.Context, message string)
}
