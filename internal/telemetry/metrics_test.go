package telemetry_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fooddelivery/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMeterProvider_ExposesDispatchMetrics(t *testing.T) {
	handler, shutdown, err := telemetry.InitMeterProvider("fooddelivery-test", "0.0.0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(t.Context()) })

	metrics, err := telemetry.NewDispatchMetrics()
	require.NoError(t, err)

	metrics.JobRun(t.Context(), "assignment", false)
	metrics.OfferMade(t.Context(), "restaurant")
	metrics.OfferMade(t.Context(), "rejection")
	metrics.NoCourierAvailable(t.Context(), "restaurant")
	metrics.OffersExpired(t.Context(), 1)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "dispatch_job_runs")
	assert.Contains(t, string(body), "dispatch_offers")
	assert.Contains(t, string(body), `job="assignment"`)
	assert.Contains(t, string(body), "dispatch_no_available_courier")
	assert.Contains(t, string(body), `trigger="restaurant"`)
	assert.Contains(t, string(body), `trigger="rejection"`)
}

func TestDispatchMetrics_NilIsNoop(t *testing.T) {
	var metrics *telemetry.DispatchMetrics

	assert.NotPanics(t, func() {
		metrics.JobRun(t.Context(), "expiry", true)
		metrics.OfferMade(t.Context(), "assignment")
		metrics.NoCourierAvailable(t.Context(), "expiry")
		metrics.OffersExpired(t.Context(), 1)
	})
}
