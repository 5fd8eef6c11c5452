package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderPurgeJob *OrderPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeHandler commands.PurgeOrdersCommandHandler,
	retention time.Duration,
	purgeSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderPurgeJob: NewOrderPurgeJob(purgeHandler, retention, purgeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start order purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderPurgeJob.Stop()
}
