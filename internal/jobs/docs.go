// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance required by the service.
//
// # Available Jobs
//
// 1. OrderPurgeJob - Runs nightly to permanently remove orders whose
// soft-delete timestamp is older than the configured retention window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, retention, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The purge job uses a six-field cron expression with a seconds column,
// "0 0 3 * * *" by default, so it runs once a day during the quiet hours.
//
// # Error Handling
//
// An empty sweep is a normal outcome and logged at debug level; failures
// are logged and retried on the next tick.
package jobs
