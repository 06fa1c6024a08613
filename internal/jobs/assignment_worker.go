package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"quickcommerce/internal/core/application/usecases/commands"
	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/domain/services"
	"quickcommerce/internal/core/ports"
	"quickcommerce/internal/pkg/blockingqueue"
)

// AssignmentWorker is the single background goroutine that matches
// pending orders with available delivery partners. It blocks on the
// dispatch queue, so it consumes no cycles while there is nothing to
// assign, and it requeues an order after a short delay when every
// partner is busy, so a starved order is assigned as soon as capacity
// frees up.
//
// Running exactly one worker keeps assignment strictly in queue order.
type AssignmentWorker struct {
	queue      *blockingqueue.Queue[int64]
	uowFactory commands.UoWFactory
	dispatcher services.OrderDispatcher
	notifier   ports.Notifier
	retryDelay time.Duration
	logger     *slog.Logger
	wg         sync.WaitGroup
}

// NewAssignmentWorker creates the assignment worker.
// retryDelay is how long the worker backs off before requeueing an order
// that found no available partner.
func NewAssignmentWorker(
	queue *blockingqueue.Queue[int64],
	uowFactory commands.UoWFactory,
	dispatcher services.OrderDispatcher,
	notifier ports.Notifier,
	retryDelay time.Duration,
	logger *slog.Logger,
) *AssignmentWorker {
	return &AssignmentWorker{
		queue:      queue,
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   notifier,
		retryDelay: retryDelay,
		logger:     logger.With("component", "assignment_worker"),
	}
}

// Start launches the worker goroutine.
func (w *AssignmentWorker) Start() {
	w.wg.Add(1)
	go w.run()
	w.logger.InfoContext(context.Background(), "Assignment worker started")
}

// Stop closes the dispatch queue and waits for the worker goroutine to
// finish the order it is processing. Orders still waiting in the queue
// are dropped; they come back on restart via GetAllActive.
func (w *AssignmentWorker) Stop() {
	w.queue.Close()
	w.wg.Wait()
	w.logger.InfoContext(context.Background(), "Assignment worker stopped")
}

func (w *AssignmentWorker) run() {
	defer w.wg.Done()

	ctx := context.Background()
	for {
		orderID, err := w.queue.Take(ctx)
		if errors.Is(err, blockingqueue.ErrClosed) {
			return
		}
		if err != nil {
			w.logger.ErrorContext(ctx, "Could not take order from dispatch queue", "error", err)
			return
		}

		w.process(ctx, orderID)
	}
}

// process runs one assignment attempt inside a transaction.
// A failed attempt never crashes the worker: errors are logged and the
// order is either dropped (gone or no longer pending) or requeued (no
// partner available).
func (w *AssignmentWorker) process(ctx context.Context, orderID int64) {
	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		w.logger.ErrorContext(ctx, "Could not begin assignment transaction",
			"order_id", orderID, "error", err)
		return
	}

	requeue, err := w.dispatchOnce(ctx, uow, orderID)
	_ = uow.Rollback(ctx)

	if err != nil {
		w.logger.ErrorContext(ctx, "Assignment attempt failed",
			"order_id", orderID, "error", err)
		return
	}

	if requeue {
		// back off outside the transaction so other operations proceed
		time.Sleep(w.retryDelay)
		w.queue.Offer(orderID)
	}
}

func (w *AssignmentWorker) dispatchOnce(ctx context.Context, uow commands.UoW, orderID int64) (bool, error) {
	waiting, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return false, err
	}

	// cancelled while waiting in the queue
	if waiting.Status() != order.Pending {
		return false, nil
	}

	available, err := uow.PartnerRepository().GetAllAvailable(ctx)
	if err != nil {
		return false, err
	}

	assigned, err := w.dispatcher.Dispatch(waiting, available)
	if errors.Is(err, services.ErrNoPartnerAvailable) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if err = uow.OrderRepository().Update(ctx, waiting); err != nil {
		return false, err
	}

	if err = uow.PartnerRepository().Update(ctx, assigned); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	w.notifier.NotifyOrderAssigned(ctx, waiting, assigned)
	w.logger.InfoContext(ctx, "Order assigned",
		"order_id", waiting.ID(), "partner_id", assigned.ID())

	return false, nil
}
