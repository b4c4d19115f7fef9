package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/telemetry"

	"github.com/robfig/cron/v3"
)

type ExpireOffersHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireOffersCommand) (int, error)
}

// OfferExpiryJob treats offers left ON_DECISION longer than ttl as rejections.
type OfferExpiryJob struct {
	handler  ExpireOffersHandler
	schedule string
	ttl      time.Duration
	metrics  *telemetry.DispatchMetrics
	cron     *cron.Cron
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func NewOfferExpiryJob(
	handler ExpireOffersHandler,
	schedule string,
	ttl time.Duration,
	metrics *telemetry.DispatchMetrics,
	logger *slog.Logger,
) *OfferExpiryJob {
	ctx, cancel := context.WithCancel(context.Background())
	return &OfferExpiryJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		metrics:  metrics,
		cron:     newCron(),
		logger:   logger.With("component", "offer_expiry_job"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (j *OfferExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { _, _ = j.RunOnce(j.ctx) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Offer expiry job started", "schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// RunOnce withdraws every expired offer and returns how many there were.
func (j *OfferExpiryJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewExpireOffersCommand(j.ttl)
	if err != nil {
		return 0, err
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Offer expiry job failed", "error", err)
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Withdrew expired offers", "count", expired)
	}

	j.metrics.OffersExpired(ctx, expired)
	j.metrics.JobRun(ctx, "offer_expiry", err != nil)
	return expired, err
}

func (j *OfferExpiryJob) Stop() {
	j.once.Do(func() {
		j.cancel()
		<-j.cron.Stop().Done()
		j.logger.InfoContext(context.Background(), "Offer expiry job stopped")
	})
}
