// Package sequence provides monotonic id sequences seeded from and
// checkpointed to a counter store. Persistence is best effort: a store
// failure is logged and the sequence keeps counting in memory, so id
// allocation never fails even when the backing store is unavailable.
package sequence

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Store persists named counters across process restarts.
// Load returns defaultValue when no value has been saved for name yet.
type Store interface {
	Load(ctx context.Context, name string, defaultValue int64) (int64, error)
	Save(ctx context.Context, name string, value int64) error
}

// Sequence allocates monotonically increasing int64 ids.
// Safe for concurrent use.
type Sequence struct {
	name   string
	store  Store
	logger *slog.Logger
	value  atomic.Int64
}

// New creates a sequence named name, seeded from store. When the store cannot
// produce a value the sequence starts at start and the failure is logged, not
// propagated.
func New(ctx context.Context, name string, start int64, store Store, logger *slog.Logger) *Sequence {
	s := &Sequence{
		name:   name,
		store:  store,
		logger: logger.With("component", "sequence", "counter", name),
	}

	value, err := store.Load(ctx, name, start)
	if err != nil {
		s.logger.WarnContext(ctx, "Could not load counter, falling back to default",
			"default", start, "error", err)
		value = start
	}
	s.value.Store(value)

	return s
}

// Next allocates the next id and checkpoints it to the store.
// A checkpoint failure is logged and the freshly allocated id returned anyway.
func (s *Sequence) Next(ctx context.Context) int64 {
	next := s.value.Add(1)

	if err := s.store.Save(ctx, s.name, next); err != nil {
		s.logger.WarnContext(ctx, "Could not persist counter", "value", next, "error", err)
	}

	return next
}

// Current returns the last allocated id without advancing the sequence.
func (s *Sequence) Current() int64 {
	return s.value.Load()
}

// Name returns the counter name the sequence persists under.
func (s *Sequence) Name() string {
	return s.name
}

// Checkpoint persists the current value to the store.
func (s *Sequence) Checkpoint(ctx context.Context) error {
	return s.store.Save(ctx, s.name, s.value.Load())
}
