package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpirySweepJob manages the scheduled expiry sweep over in-task tickets.
// Runs shortly after midnight so tickets whose earliest product expiry has
// passed are expired before the morning shift opens the pending pool.
type ExpirySweepJob struct {
	handler commands.SweepExpiredCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExpirySweepJob creates a new job for sweeping expired tickets.
// Uses SweepExpiredCommandHandler to expire in-task tickets nightly.
func NewExpirySweepJob(handler commands.SweepExpiredCommandHandler, logger *slog.Logger) *ExpirySweepJob {
	return &ExpirySweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "expiry_sweep_job"),
	}
}

// Start begins the expiry sweep job to run every night at 00:05.
func (j *ExpirySweepJob) Start() error {
	_, err := j.cron.AddFunc("5 0 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewSweepExpiredCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep command construction failed", "error", err)
			return
		}

		swept, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep job failed", "error", err)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Expiry sweep completed", "expired_tickets", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry sweep job started (running nightly at 00:05)")
	return nil
}

// Stop stops the expiry sweep job.
func (j *ExpirySweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expiry sweep job stopped")
}
