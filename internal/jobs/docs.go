// Package jobs provides the background workers of the dispatch engine.
//
// # Workers
//
// 1. AssignmentWorker - a single goroutine blocking on the dispatch queue,
// matching pending orders with available partners in arrival order and
// requeueing orders when every partner is busy.
//
// 2. ExpiryScheduler - arms a per-order auto-cancel timer and cancels
// orders that are neither delivered nor cancelled when it fires.
//
// 3. CounterCheckpointJob - a cron job (github.com/robfig/cron/v3)
// persisting the id counters every 30 seconds.
//
// # Usage
//
// Workers are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(worker, scheduler, checkpointJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The assignment worker treats "no partner available" as a normal
// condition and requeues; all other failures are logged and the affected
// order dropped rather than crashing the worker. Expiry cancellations
// that lose the race against pickup or delivery are logged and skipped.
package jobs
