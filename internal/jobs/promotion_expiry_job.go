// Package jobs provides the scheduled background tasks of the platform,
// built on github.com/robfig/cron/v3.
package jobs

import (
	"context"
	"log/slog"

	"eats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PromotionExpiryJob periodically demotes restaurants whose paid promotion
// window has ended. Runs every minute; the sweep is a single bulk update and
// is idempotent, so an overlapping or repeated run is harmless.
type PromotionExpiryJob struct {
	handler commands.ClearExpiredPromotionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPromotionExpiryJob creates the promotion expiry job.
func NewPromotionExpiryJob(
	handler commands.ClearExpiredPromotionsCommandHandler,
	logger *slog.Logger,
) *PromotionExpiryJob {
	return &PromotionExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "promotion_expiry_job"),
	}
}

// Start begins the promotion expiry job, running once a minute.
func (j *PromotionExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewClearExpiredPromotionsCommand()

		cleared, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Promotion expiry job failed", "error", err)
			return
		}
		if cleared > 0 {
			j.logger.InfoContext(ctx, "Expired promotions cleared", "count", cleared)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Promotion expiry job started (running every minute)")
	return nil
}

// Stop stops the promotion expiry job.
func (j *PromotionExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Promotion expiry job stopped")
}
