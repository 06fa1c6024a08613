// Package console implements the notification sink as plain text lines
// written to a stream, stdout in the default deployment. Every line
// carries a generated event id so notifications can be correlated with
// logs when debugging dispatch issues.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/core/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier writes human-readable notification lines to a stream.
// Customer names are resolved through the customer repository so
// notifications address people, not ids. Delivery is best effort: a
// failed write or lookup is logged and the notification dropped.
type Notifier struct {
	mu        sync.Mutex
	out       io.Writer
	customers ports.CustomerRepository
	logger    *slog.Logger
}

// NewNotifier creates a console notifier writing to out.
func NewNotifier(out io.Writer, customers ports.CustomerRepository, logger *slog.Logger) *Notifier {
	return &Notifier{
		out:       out,
		customers: customers,
		logger:    logger.With("component", "console_notifier"),
	}
}

// NotifyOrderCreated tells the customer the order was accepted.
func (n *Notifier) NotifyOrderCreated(ctx context.Context, o *order.Order) {
	n.emit(ctx, n.customerRecipient(ctx, o.CustomerID()),
		fmt.Sprintf("Order #%d created for %s. Looking for delivery partner...",
			o.ID(), o.ItemName()))
}

// NotifyOrderAssigned tells the customer and the partner about the assignment.
func (n *Notifier) NotifyOrderAssigned(ctx context.Context, o *order.Order, p *partner.Partner) {
	assignedLine := fmt.Sprintf("Order #%d assigned to %s.", o.ID(), p.Name())
	if p.VehicleNumber() != "" {
		assignedLine = fmt.Sprintf("Order #%d assigned to %s (vehicle %s).",
			o.ID(), p.Name(), p.VehicleNumber())
	}

	n.emit(ctx, n.customerRecipient(ctx, o.CustomerID()), assignedLine)
	n.emit(ctx, partnerRecipient(p),
		fmt.Sprintf("New delivery: order #%d (%s). Please pick it up.",
			o.ID(), o.ItemName()))
}

// NotifyOrderPickedUp tells the customer the order is on its way.
func (n *Notifier) NotifyOrderPickedUp(ctx context.Context, o *order.Order, p *partner.Partner) {
	n.emit(ctx, n.customerRecipient(ctx, o.CustomerID()),
		fmt.Sprintf("Order #%d picked up by %s. On the way!", o.ID(), p.Name()))
}

// NotifyOrderDelivered tells the customer the order arrived.
func (n *Notifier) NotifyOrderDelivered(ctx context.Context, o *order.Order, p *partner.Partner) {
	n.emit(ctx, n.customerRecipient(ctx, o.CustomerID()),
		fmt.Sprintf("Order #%d delivered by %s. Thank you!", o.ID(), p.Name()))
}

// NotifyOrderCancelled tells the customer the order was cancelled and why.
func (n *Notifier) NotifyOrderCancelled(ctx context.Context, o *order.Order, reason string) {
	n.emit(ctx, n.customerRecipient(ctx, o.CustomerID()),
		fmt.Sprintf("Order #%d cancelled. Reason: %s", o.ID(), reason))
}

// NotifyPartnerFreed tells the partner its order in flight was cancelled.
func (n *Notifier) NotifyPartnerFreed(ctx context.Context, p *partner.Partner, o *order.Order) {
	n.emit(ctx, partnerRecipient(p),
		fmt.Sprintf("Order #%d was cancelled. You are available for new deliveries.", o.ID()))
}

// LogSystemEvent records an operational event addressed to nobody in particular.
func (n *Notifier) LogSystemEvent(ctx context.Context, message string) {
	n.emit(ctx, "system", message)
}

func (n *Notifier) customerRecipient(ctx context.Context, customerID int64) string {
	found, err := n.customers.Get(ctx, customerID)
	if err != nil {
		n.logger.WarnContext(ctx, "Could not resolve customer for notification",
			"customer_id", customerID, "error", err)
		return fmt.Sprintf("customer #%d", customerID)
	}

	if found.Phone() == "" {
		return fmt.Sprintf("customer %s", found.Name())
	}

	return fmt.Sprintf("customer %s (%s)", found.Name(), found.Phone())
}

func partnerRecipient(p *partner.Partner) string {
	if p.Phone() == "" {
		return fmt.Sprintf("partner %s", p.Name())
	}

	return fmt.Sprintf("partner %s (%s)", p.Name(), p.Phone())
}

func (n *Notifier) emit(ctx context.Context, recipient string, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintf(n.out, "[%s] To %s: %s\n", uuid.NewString(), recipient, message); err != nil {
		n.logger.ErrorContext(ctx, "Could not write notification",
			"recipient", recipient, "error", err)
	}
}
