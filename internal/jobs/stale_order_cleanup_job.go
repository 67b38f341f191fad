package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"ordermanagement/internal/core/application/usecases/commands"
)

// StaleOrderCleanupJob periodically cancels pending orders that have
// been sitting unpaid for longer than the configured age.
type StaleOrderCleanupJob struct {
	handler  commands.CancelStaleOrdersCommandHandler
	schedule string
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderCleanupJob creates a cleanup job that runs on the given
// cron schedule (with a seconds field) and cancels pending orders older
// than maxAge.
func NewStaleOrderCleanupJob(
	handler commands.CancelStaleOrdersCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderCleanupJob {
	return &StaleOrderCleanupJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_order_cleanup_job"),
	}
}

// Start begins the cleanup job on its configured schedule.
func (j *StaleOrderCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order cleanup misconfigured", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order cleanup failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cleanup job started", "schedule", j.schedule, "maxAge", j.maxAge)
	return nil
}

// Stop stops the cleanup job.
func (j *StaleOrderCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cleanup job stopped")
}
