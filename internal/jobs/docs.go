// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipping service.
//
// # Available Jobs
//
// 1. ShipmentRevalidationJob - Runs every minute to re-check packed units of
// open shipments against the inventory authority and flag ineligible ones
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(revalidateHandler, logger)
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
// The revalidation job uses the cron expression "* * * * *" and runs every
// minute. Completion re-checks every outgoing unit anyway; the sweep only
// surfaces problems earlier so operators can remove bad units before the
// close is attempted.
//
// # Error Handling
//
// - An empty sweep (no open shipments) is an expected scenario and is ignored
// - Inventory authority outages are logged at warn level and the sweep is skipped
// - Failed job starts stop any already running jobs
package jobs
