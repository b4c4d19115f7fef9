package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "fooddelivery/dispatch"

// DispatchMetrics counts courier dispatch outcomes on every path that offers
// an order, plus background job runs. Instruments come from the global meter
// provider at construction time, so build it after InitMeterProvider.
//
// Every method is a no-op on a nil receiver.
type DispatchMetrics struct {
	runs      metric.Int64Counter
	offers    metric.Int64Counter
	noCourier metric.Int64Counter
	expired   metric.Int64Counter
}

func NewDispatchMetrics() (*DispatchMetrics, error) {
	meter := otel.Meter(meterName)

	runs, err := meter.Int64Counter("dispatch.job.runs",
		metric.WithDescription("Background dispatch job runs by job and outcome"))
	if err != nil {
		return nil, err
	}
	offers, err := meter.Int64Counter("dispatch.offers",
		metric.WithDescription("Orders offered to a courier by trigger"))
	if err != nil {
		return nil, err
	}
	noCourier, err := meter.Int64Counter("dispatch.no_available_courier",
		metric.WithDescription("Offer attempts that found no idle courier by trigger"))
	if err != nil {
		return nil, err
	}
	expired, err := meter.Int64Counter("dispatch.offers.expired",
		metric.WithDescription("Offers withdrawn because the courier did not decide in time"))
	if err != nil {
		return nil, err
	}

	return &DispatchMetrics{runs: runs, offers: offers, noCourier: noCourier, expired: expired}, nil
}

// JobRun records one job execution.
func (m *DispatchMetrics) JobRun(ctx context.Context, job string, failed bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	m.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("job", job),
		attribute.String("outcome", outcome),
	))
}

// OfferMade records an order bound to a courier. trigger is one of the
// commands.Trigger* values.
func (m *DispatchMetrics) OfferMade(ctx context.Context, trigger string) {
	if m == nil {
		return
	}
	m.offers.Add(ctx, 1, metric.WithAttributes(attribute.String("trigger", trigger)))
}

func (m *DispatchMetrics) NoCourierAvailable(ctx context.Context, trigger string) {
	if m == nil {
		return
	}
	m.noCourier.Add(ctx, 1, metric.WithAttributes(attribute.String("trigger", trigger)))
}

func (m *DispatchMetrics) OffersExpired(ctx context.Context, n int) {
	if m == nil || n == 0 {
		return
	}
	m.expired.Add(ctx, int64(n))
}
