package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"quickcommerce/internal/core/application/usecases/commands"
)

// expiryReason is the cancellation reason recorded when an order's
// auto-cancel timer fires.
const expiryReason = "Order timed out - no delivery partner completed it in time"

// ExpiryScheduler arms an auto-cancel timer for every created order.
// When the timer fires before the order is delivered or cancelled, the
// order is cancelled with a timeout reason through the regular
// cancellation handler, so partner release and notifications behave
// exactly as a manual cancellation.
type ExpiryScheduler struct {
	handler commands.CancelOrderCommandHandler
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	timers  map[int64]*time.Timer
	stopped bool
}

// NewExpiryScheduler creates a scheduler cancelling orders after timeout.
func NewExpiryScheduler(
	handler commands.CancelOrderCommandHandler,
	timeout time.Duration,
	logger *slog.Logger,
) *ExpiryScheduler {
	return &ExpiryScheduler{
		handler: handler,
		timeout: timeout,
		logger:  logger.With("component", "expiry_scheduler"),
		timers:  make(map[int64]*time.Timer),
	}
}

// Schedule arms the auto-cancel timer for an order.
// No-op after Stop.
func (s *ExpiryScheduler) Schedule(orderID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.timers[orderID] = time.AfterFunc(s.timeout, func() {
		s.expire(orderID)
	})
}

// Cancel disarms the timer for an order that reached a terminal state
// before expiring. Returns true when a timer was still armed.
func (s *ExpiryScheduler) Cancel(orderID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[orderID]
	if !ok {
		return false
	}

	timer.Stop()
	delete(s.timers, orderID)
	return true
}

// Stop disarms every timer. Armed timers never fire after Stop returns.
func (s *ExpiryScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for orderID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, orderID)
	}
}

func (s *ExpiryScheduler) expire(orderID int64) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.timers, orderID)
	s.mu.Unlock()

	ctx := context.Background()

	cmd, err := commands.NewCancelOrderCommand(orderID, expiryReason)
	if err != nil {
		s.logger.ErrorContext(ctx, "Could not build expiry cancellation",
			"order_id", orderID, "error", err)
		return
	}

	if err := s.handler.Handle(ctx, cmd); err != nil {
		// expected when the order was picked up or delivered in the meantime
		s.logger.InfoContext(ctx, "Expiry cancellation skipped",
			"order_id", orderID, "error", err)
		return
	}

	s.logger.InfoContext(ctx, "Order auto-cancelled after timeout", "order_id", orderID)
}
