package jobs

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule runs the expiry sweep once a minute, on second zero.
const DefaultExpirySchedule = "0 * * * * *"

type expireUnpaidOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireUnpaidOrdersCommand) ([]*order.Order, error)
}

type expiryRecorder interface {
	ObserveExpired(n int)
}

// UnpaidOrderExpiryJob cancels orders that stayed in created status longer
// than the configured TTL.
type UnpaidOrderExpiryJob struct {
	handler  expireUnpaidOrdersHandler
	recorder expiryRecorder
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewUnpaidOrderExpiryJob creates the job. schedule is a six field cron
// expression (with seconds).
func NewUnpaidOrderExpiryJob(
	handler expireUnpaidOrdersHandler,
	recorder expiryRecorder,
	ttl time.Duration,
	schedule string,
	logger *slog.Logger,
) *UnpaidOrderExpiryJob {
	return &UnpaidOrderExpiryJob{
		handler:  handler,
		recorder: recorder,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "unpaid_order_expiry_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *UnpaidOrderExpiryJob) Start() error {
	if _, err := commands.NewExpireUnpaidOrdersCommand(j.ttl); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unpaid order expiry job started",
		"schedule", j.schedule,
		"ttl", j.ttl.String(),
	)
	return nil
}

// Run performs one sweep. Failures are logged; the next tick retries.
func (j *UnpaidOrderExpiryJob) Run(ctx context.Context) {
	cmd, err := commands.NewExpireUnpaidOrdersCommand(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Unpaid order expiry job misconfigured", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Unpaid order expiry job failed", "error", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	j.recorder.ObserveExpired(len(expired))
	for _, o := range expired {
		j.logger.InfoContext(ctx, "Unpaid order cancelled",
			"order_id", o.ID().String(),
			"user_id", o.UserID().String(),
			"created_at", o.CreatedAt(),
		)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *UnpaidOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Unpaid order expiry job stopped")
}
