package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderCleanupJob *StaleOrderCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	cleanupSchedule string,
	staleOrderMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderCleanupJob: NewStaleOrderCleanupJob(cancelStaleOrdersHandler, cleanupSchedule, staleOrderMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderCleanupJob.Stop()
}
