package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/domain/model/partner"
)

type fakePublisher struct {
	mu       sync.Mutex
	messages [][]byte
	err      error
}

func (f *fakePublisher) Publish(_ string, message []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message)
	return nil
}

type countingNotifier struct {
	created   int
	cancelled int
}

func (c *countingNotifier) NotifyOrderCreated(context.Context, *order.Order) { c.created++ }
func (c *countingNotifier) NotifyOrderAssigned(context.Context, *order.Order, *partner.Partner) {
}
func (c *countingNotifier) NotifyOrderPickedUp(context.Context, *order.Order, *partner.Partner) {
}
func (c *countingNotifier) NotifyOrderDelivered(context.Context, *order.Order, *partner.Partner) {
}
func (c *countingNotifier) NotifyOrderCancelled(context.Context, *order.Order, string) {
	c.cancelled++
}
func (c *countingNotifier) NotifyPartnerFreed(context.Context, *partner.Partner, *order.Order) {}
func (c *countingNotifier) LogSystemEvent(context.Context, string)                             {}

func TestNotifier_PublishesEventAndForwards(t *testing.T) {
	pub := &fakePublisher{}
	next := &countingNotifier{}
	n := NewNotifier(next, pub, "notifications", slog.New(slog.DiscardHandler))

	o, err := order.NewOrder(1001, 1, "Milk")
	require.NoError(t, err)

	n.NotifyOrderCreated(t.Context(), o)

	require.Len(t, pub.messages, 1)
	assert.Equal(t, 1, next.created)

	var event notificationEvent
	require.NoError(t, json.Unmarshal(pub.messages[0], &event))
	assert.Equal(t, "order_created", event.Type)
	assert.Equal(t, int64(1001), event.OrderID)
	assert.Equal(t, int64(1), event.CustomerID)
	assert.NotEmpty(t, event.EventID)
	assert.NotEmpty(t, event.OccurredAt)
}

func TestNotifier_CancelledCarriesReason(t *testing.T) {
	pub := &fakePublisher{}
	n := NewNotifier(&countingNotifier{}, pub, "notifications", slog.New(slog.DiscardHandler))

	o, err := order.NewOrder(1001, 1, "Milk")
	require.NoError(t, err)

	n.NotifyOrderCancelled(t.Context(), o, "Order timed out")

	require.Len(t, pub.messages, 1)

	var event notificationEvent
	require.NoError(t, json.Unmarshal(pub.messages[0], &event))
	assert.Equal(t, "order_cancelled", event.Type)
	assert.Equal(t, "Order timed out", event.Reason)
}

func TestNotifier_BrokerFailureStillForwards(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	next := &countingNotifier{}
	n := NewNotifier(next, pub, "notifications", slog.New(slog.DiscardHandler))

	o, err := order.NewOrder(1001, 1, "Milk")
	require.NoError(t, err)

	n.NotifyOrderCreated(t.Context(), o)
	n.NotifyOrderCancelled(t.Context(), o, "Cancelled by customer")

	assert.Equal(t, 1, next.created)
	assert.Equal(t, 1, next.cancelled)
}
