package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/telemetry"
)

const (
	DefaultAssignmentSchedule = "* * * * * *"
	DefaultExpirySchedule     = "*/5 * * * * *"
)

// Config holds cron expressions with a seconds field. A zero OfferTTL
// disables the offer expiry job.
type Config struct {
	AssignmentSchedule string
	ExpirySchedule     string
	OfferTTL           time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierAssignmentJob *CourierAssignmentJob
	offerExpiryJob       *OfferExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Schedules are validated here so a typo fails at startup.
func NewJobManager(
	cfg Config,
	assignCourierHandler AssignCourierHandler,
	expireOffersHandler ExpireOffersHandler,
	metrics *telemetry.DispatchMetrics,
	logger *slog.Logger,
) (*JobManager, error) {
	if cfg.AssignmentSchedule == "" {
		cfg.AssignmentSchedule = DefaultAssignmentSchedule
	}
	if cfg.ExpirySchedule == "" {
		cfg.ExpirySchedule = DefaultExpirySchedule
	}
	if cfg.OfferTTL < 0 {
		return nil, fmt.Errorf("offer ttl must not be negative, got %s", cfg.OfferTTL)
	}

	jm := &JobManager{
		courierAssignmentJob: NewCourierAssignmentJob(assignCourierHandler, cfg.AssignmentSchedule, metrics, logger),
	}
	if cfg.OfferTTL > 0 {
		jm.offerExpiryJob = NewOfferExpiryJob(expireOffersHandler, cfg.ExpirySchedule, cfg.OfferTTL, metrics, logger)
	}
	return jm, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier assignment job: %w", err)
	}

	if jm.offerExpiryJob == nil {
		return nil
	}
	if err := jm.offerExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.courierAssignmentJob.Stop()
		return fmt.Errorf("failed to start offer expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running passes to finish.
func (jm *JobManager) StopAll() {
	if jm.offerExpiryJob != nil {
		jm.offerExpiryJob.Stop()
	}
	jm.courierAssignmentJob.Stop()
}
