package ports

import (
	"context"
)

// CounterStore persists named id counters across process restarts.
// Implementations exist for flat files and for Postgres.
type CounterStore interface {
	// Load reads the counter named name.
	// Returns defaultValue when the counter has never been saved.
	Load(ctx context.Context, name string, defaultValue int64) (int64, error)

	// Save writes the counter named name.
	Save(ctx context.Context, name string, value int64) error
}
