package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/telemetry"

	"github.com/robfig/cron/v3"
)

// maxAssignmentsPerRun bounds how many orders one run may dispatch.
const maxAssignmentsPerRun = 100

type AssignCourierHandler interface {
	Handle(ctx context.Context, command commands.AssignCourierCommand) error
}

// CourierAssignmentJob retries dispatch for orders nobody could take when
// they reached DELIVERER_PENDING.
type CourierAssignmentJob struct {
	handler  AssignCourierHandler
	schedule string
	metrics  *telemetry.DispatchMetrics
	cron     *cron.Cron
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// NewCourierAssignmentJob creates a job running handler on schedule.
// metrics may be nil.
func NewCourierAssignmentJob(
	handler AssignCourierHandler,
	schedule string,
	metrics *telemetry.DispatchMetrics,
	logger *slog.Logger,
) *CourierAssignmentJob {
	ctx, cancel := context.WithCancel(context.Background())
	return &CourierAssignmentJob{
		handler:  handler,
		schedule: schedule,
		metrics:  metrics,
		cron:     newCron(),
		logger:   logger.With("component", "courier_assignment_job"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start schedules the job.
func (j *CourierAssignmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { _, _ = j.RunOnce(j.ctx) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Courier assignment job started", "schedule", j.schedule)
	return nil
}

// RunOnce offers waiting orders until none is left, no courier is idle or
// maxAssignmentsPerRun is reached. It returns how many orders were offered.
func (j *CourierAssignmentJob) RunOnce(ctx context.Context) (int, error) {
	offered := 0
	var runErr error

	for offered < maxAssignmentsPerRun {
		err := j.handler.Handle(ctx, commands.NewAssignCourierCommand())
		if errors.Is(err, commands.ErrNoOrderFound) || errors.Is(err, errs.ErrNoAvailableCourier) {
			break
		}
		if err != nil {
			runErr = err
			j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", err)
			break
		}
		offered++
	}

	if offered > 0 {
		j.logger.InfoContext(ctx, "Offered waiting orders to couriers", "count", offered)
	}
	j.metrics.JobRun(ctx, "assignment", runErr != nil)
	return offered, runErr
}

// Stop cancels a running pass and waits for it to return.
func (j *CourierAssignmentJob) Stop() {
	j.once.Do(func() {
		j.cancel()
		<-j.cron.Stop().Done()
		j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
	})
}

func newCron() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
