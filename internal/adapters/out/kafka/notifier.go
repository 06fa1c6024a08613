package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/core/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

// publisher is the producer surface the notifier needs.
type publisher interface {
	Publish(topic string, message []byte) error
}

// notificationEvent is the JSON payload published for every notification.
type notificationEvent struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	OrderID    int64  `json:"order_id,omitempty"`
	CustomerID int64  `json:"customer_id,omitempty"`
	PartnerID  int64  `json:"partner_id,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// Notifier decorates another notifier with Kafka event publishing.
// Publishing is best effort: a broker failure is logged and the wrapped
// notifier still runs, so order transitions never depend on Kafka being up.
type Notifier struct {
	next     ports.Notifier
	producer publisher
	topic    string
	logger   *slog.Logger
}

// NewNotifier wraps next with event publishing to topic.
func NewNotifier(next ports.Notifier, producer publisher, topic string, logger *slog.Logger) *Notifier {
	return &Notifier{
		next:     next,
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_notifier", "topic", topic),
	}
}

// NotifyOrderCreated publishes an order_created event and forwards to the wrapped notifier.
func (n *Notifier) NotifyOrderCreated(ctx context.Context, o *order.Order) {
	n.publish(ctx, notificationEvent{
		Type:       "order_created",
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
	})
	n.next.NotifyOrderCreated(ctx, o)
}

// NotifyOrderAssigned publishes an order_assigned event and forwards to the wrapped notifier.
func (n *Notifier) NotifyOrderAssigned(ctx context.Context, o *order.Order, p *partner.Partner) {
	n.publish(ctx, notificationEvent{
		Type:       "order_assigned",
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		PartnerID:  p.ID(),
	})
	n.next.NotifyOrderAssigned(ctx, o, p)
}

// NotifyOrderPickedUp publishes an order_picked_up event and forwards to the wrapped notifier.
func (n *Notifier) NotifyOrderPickedUp(ctx context.Context, o *order.Order, p *partner.Partner) {
	n.publish(ctx, notificationEvent{
		Type:       "order_picked_up",
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		PartnerID:  p.ID(),
	})
	n.next.NotifyOrderPickedUp(ctx, o, p)
}

// NotifyOrderDelivered publishes an order_delivered event and forwards to the wrapped notifier.
func (n *Notifier) NotifyOrderDelivered(ctx context.Context, o *order.Order, p *partner.Partner) {
	n.publish(ctx, notificationEvent{
		Type:       "order_delivered",
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		PartnerID:  p.ID(),
	})
	n.next.NotifyOrderDelivered(ctx, o, p)
}

// NotifyOrderCancelled publishes an order_cancelled event and forwards to the wrapped notifier.
func (n *Notifier) NotifyOrderCancelled(ctx context.Context, o *order.Order, reason string) {
	n.publish(ctx, notificationEvent{
		Type:       "order_cancelled",
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		Reason:     reason,
	})
	n.next.NotifyOrderCancelled(ctx, o, reason)
}

// NotifyPartnerFreed publishes a partner_freed event and forwards to the wrapped notifier.
func (n *Notifier) NotifyPartnerFreed(ctx context.Context, p *partner.Partner, o *order.Order) {
	n.publish(ctx, notificationEvent{
		Type:      "partner_freed",
		OrderID:   o.ID(),
		PartnerID: p.ID(),
	})
	n.next.NotifyPartnerFreed(ctx, p, o)
}

// LogSystemEvent publishes a system_event and forwards to the wrapped notifier.
func (n *Notifier) LogSystemEvent(ctx context.Context, message string) {
	n.publish(ctx, notificationEvent{
		Type:    "system_event",
		Message: message,
	})
	n.next.LogSystemEvent(ctx, message)
}

func (n *Notifier) publish(ctx context.Context, event notificationEvent) {
	event.EventID = uuid.NewString()
	event.OccurredAt = time.Now().UTC().Format(time.RFC3339Nano)

	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.ErrorContext(ctx, "Could not encode notification event",
			"type", event.Type, "error", err)
		return
	}

	if err := n.producer.Publish(n.topic, payload); err != nil {
		n.logger.ErrorContext(ctx, "Could not publish notification event",
			"type", event.Type, "error", err)
	}
}
