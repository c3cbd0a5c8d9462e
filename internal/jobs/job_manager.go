package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockReportJob *LowStockReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(db *gorm.DB, lowStockThreshold int, logger *slog.Logger) *JobManager {
	return &JobManager{
		lowStockReportJob: NewLowStockReportJob(db, lowStockThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockReportJob.Stop()
}
