package jobs

import (
	"context"
	"log/slog"

	"kitchenboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderFeedSyncJob periodically imports new orders from the external intake
// feed. The import is idempotent, so overlapping or repeated passes are safe.
type OrderFeedSyncJob struct {
	handler  commands.ImportOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderFeedSyncJob creates a job running the feed import on the given cron
// schedule (with a seconds field, e.g. "0 * * * * *" for every minute).
func NewOrderFeedSyncJob(
	handler commands.ImportOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderFeedSyncJob {
	return &OrderFeedSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_feed_sync_job"),
	}
}

// Start begins the periodic feed import.
func (j *OrderFeedSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewImportOrdersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order feed sync job misconfigured", "error", cmdErr)
			return
		}

		if _, handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Order feed sync job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order feed sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the periodic feed import.
func (j *OrderFeedSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order feed sync job stopped")
}
