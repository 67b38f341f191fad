// Package jobs provides scheduled background tasks for the order
// management system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. StaleOrderCleanupJob - Cancels pending orders that have stayed unpaid
// longer than the configured maximum age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, schedule, maxAge, logger)
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
// The cleanup job uses a six-field cron expression with a seconds field,
// for example "0 * * * * *" to run at the start of every minute.
//
// # Error Handling
//
// Cleanup failures are logged and retried on the next scheduled run;
// a failed run never stops the schedule.
package jobs
