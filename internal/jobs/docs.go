// Package jobs provides scheduled background tasks for the warehouse system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for inventory oversight.
//
// # Available Jobs
//
// 1. LowStockReportJob - Runs every minute to report active products whose
// inventory count dropped below the configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the database handle and threshold
//	jobManager := jobs.NewJobManager(db, cfg.LowStockThreshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job only observes: query failures are logged and the next tick
// retries, so a transient database outage never stops the schedule.
package jobs
