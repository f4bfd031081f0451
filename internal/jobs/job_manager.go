// Package jobs provides the scheduled background tasks of the service,
// implemented with github.com/robfig/cron/v3.
//
// The only job today is OrderFeedSyncJob, which pulls new rows from the
// external order intake feed. Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(importHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"kitchenboard/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderFeedSyncJob *OrderFeedSyncJob
}

// NewJobManager creates a job manager wiring the feed import handler to its
// schedule.
func NewJobManager(
	importOrdersHandler commands.ImportOrdersCommandHandler,
	feedSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderFeedSyncJob: NewOrderFeedSyncJob(importOrdersHandler, feedSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderFeedSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start order feed sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderFeedSyncJob.Stop()
}
