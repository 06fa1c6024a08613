// Package blockingqueue implements an unbounded FIFO queue with a blocking
// take operation, intended for handing work items to a single consumer
// goroutine from any number of producers.
package blockingqueue

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Take once the queue has been shut down.
var ErrClosed = errors.New("queue is closed")

// Queue is an unbounded multi-producer FIFO queue.
//
// Offer never blocks and never fails. Take blocks the caller until an item is
// available, the supplied context is cancelled, or the queue is closed.
// Remove deletes a specific item that is still queued, which lets producers
// retract work that became irrelevant before the consumer reached it.
//
// FIFO ordering is best effort only: consumers that re-Offer an item after a
// failed processing attempt push it to the tail, behind items enqueued later.
type Queue[T comparable] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool
}

// New creates an empty queue.
func New[T comparable]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Offer appends item to the tail of the queue and wakes a blocked consumer.
// Offers after Close are dropped.
func (q *Queue[T]) Offer(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.items = append(q.items, item)
	q.cond.Signal()
}

// Take removes and returns the head of the queue, blocking while the queue is
// empty. It returns ErrClosed after Close and ctx.Err() after context
// cancellation; items still queued at that point are abandoned.
func (q *Queue[T]) Take(ctx context.Context) (T, error) {
	var zero T

	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.cond.Broadcast()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed && ctx.Err() == nil {
		q.cond.Wait()
	}

	if q.closed {
		return zero, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	item := q.items[0]
	q.items = q.items[1:]
	return item, nil
}

// Remove deletes the first queued occurrence of item.
// It reports whether anything was removed; removing an absent item is a no-op.
func (q *Queue[T]) Remove(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, queued := range q.items {
		if queued == item {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close shuts the queue down and unblocks all pending Take calls.
// Subsequent Offers are dropped and subsequent Takes return ErrClosed.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}
