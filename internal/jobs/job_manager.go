package jobs

import (
	"fmt"
	"log/slog"

	"thumathina/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverOrdersRefreshJob *DriverOrdersRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(cache ports.ViewCache, refreshSpec string, logger *slog.Logger) *JobManager {
	return &JobManager{
		driverOrdersRefreshJob: NewDriverOrdersRefreshJob(cache, refreshSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.driverOrdersRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver orders refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverOrdersRefreshJob.Stop()
}
