package jobs

import (
	"fmt"
)

// JobManager coordinates all background workers in the application.
// Provides a unified interface to start and stop them together.
type JobManager struct {
	assignmentWorker *AssignmentWorker
	expiryScheduler  *ExpiryScheduler
	checkpointJob    *CounterCheckpointJob
}

// NewJobManager creates a job manager over the given workers.
// expiryScheduler may be nil when order auto-cancellation is disabled.
func NewJobManager(
	assignmentWorker *AssignmentWorker,
	expiryScheduler *ExpiryScheduler,
	checkpointJob *CounterCheckpointJob,
) *JobManager {
	return &JobManager{
		assignmentWorker: assignmentWorker,
		expiryScheduler:  expiryScheduler,
		checkpointJob:    checkpointJob,
	}
}

// StartAll starts every background worker.
// Returns an error if any of them fails to start.
func (jm *JobManager) StartAll() error {
	jm.assignmentWorker.Start()

	if err := jm.checkpointJob.Start(); err != nil {
		jm.assignmentWorker.Stop()
		return fmt.Errorf("failed to start counter checkpoint job: %w", err)
	}

	return nil
}

// StopAll stops every background worker gracefully.
// Expiry timers are disarmed first so nothing fires mid-shutdown.
func (jm *JobManager) StopAll() {
	if jm.expiryScheduler != nil {
		jm.expiryScheduler.Stop()
	}
	jm.checkpointJob.Stop()
	jm.assignmentWorker.Stop()
}
