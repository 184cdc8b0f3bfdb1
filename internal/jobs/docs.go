// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. ExpirySweepJob - Runs nightly to expire in-task tickets whose earliest product expiry has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepExpiredHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep job uses the cron expression "5 0 * * *", running once per night
// at 00:05. The sweep also runs inline when the pending pool is loaded, so the
// job exists to catch days with no page traffic; running it twice for the same
// day changes nothing the second time.
//
// # Error Handling
//
// - Sweep errors are logged and retried on the next schedule
// - Job start failures propagate to the caller, which aborts startup
package jobs
