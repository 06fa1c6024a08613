package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Checkpointer is a counter that can persist its current value.
type Checkpointer interface {
	Name() string
	Checkpoint(ctx context.Context) error
}

// CounterCheckpointJob periodically persists the id counters so a crash
// between allocations loses at most a few seconds of counter progress.
// Runs every 30 seconds.
type CounterCheckpointJob struct {
	counters []Checkpointer
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCounterCheckpointJob creates a checkpoint job for the given counters.
func NewCounterCheckpointJob(counters []Checkpointer, logger *slog.Logger) *CounterCheckpointJob {
	return &CounterCheckpointJob{
		counters: counters,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "counter_checkpoint_job"),
	}
}

// Start begins checkpointing every 30 seconds.
func (j *CounterCheckpointJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		for _, counter := range j.counters {
			if err := counter.Checkpoint(ctx); err != nil {
				j.logger.ErrorContext(ctx, "Counter checkpoint failed",
					"counter", counter.Name(), "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Counter checkpoint job started (running every 30 seconds)")
	return nil
}

// Stop stops the checkpoint job.
func (j *CounterCheckpointJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Counter checkpoint job stopped")
}
