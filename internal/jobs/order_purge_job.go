package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderPurgeJob permanently removes orders that stayed soft-deleted past
// the retention window. Keeps the orders table from accumulating rows that
// can no longer be restored by policy.
type OrderPurgeJob struct {
	handler   commands.PurgeOrdersCommandHandler
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderPurgeJob creates the retention purge job. The schedule is a
// six-field cron expression with a seconds column.
func NewOrderPurgeJob(
	handler commands.PurgeOrdersCommandHandler,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *OrderPurgeJob {
	return &OrderPurgeJob{
		handler:   handler,
		retention: retention,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "order_purge_job"),
	}
}

// Start schedules the purge job.
func (j *OrderPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeOrdersCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order purge job misconfigured", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order purge job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged soft-deleted orders", "count", purged)
		} else {
			j.logger.DebugContext(ctx, "No soft-deleted orders past retention")
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order purge job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Stop stops the purge job.
func (j *OrderPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order purge job stopped")
}
