package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	unpaidOrderExpiryJob *UnpaidOrderExpiryJob
	logger               *slog.Logger
}

// NewJobManager creates a job manager. A zero unpaidOrderTTL disables the
// expiry job.
func NewJobManager(
	expireHandler expireUnpaidOrdersHandler,
	recorder expiryRecorder,
	unpaidOrderTTL time.Duration,
	expirySchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if unpaidOrderTTL > 0 {
		jm.unpaidOrderExpiryJob = NewUnpaidOrderExpiryJob(expireHandler, recorder, unpaidOrderTTL, expirySchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.unpaidOrderExpiryJob == nil {
		jm.logger.Info("Unpaid order expiry disabled")
		return nil
	}

	if err := jm.unpaidOrderExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start unpaid order expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.unpaidOrderExpiryJob != nil {
		jm.unpaidOrderExpiryJob.Stop()
	}
}
