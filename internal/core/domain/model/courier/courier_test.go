package courier_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Test Courier")
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestNewCourier(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should create idle courier", func(t *testing.T) {
		c, err := courier.NewCourier(id, "  Alice ")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, courier.Idle, c.Availability())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := courier.NewCourier(id, " ")

		require.ErrorIs(t, err, courier.ErrNameIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should join errors", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.UUID{}, "")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, courier.ErrNameIsRequired)
	})
}

func TestRestoreCourier(t *testing.T) {
	c, err := courier.RestoreCourier(kernel.NewUUID(), "Bob", courier.Busy)
	require.NoError(t, err)
	assert.Equal(t, courier.Busy, c.Availability())

	_, err = courier.RestoreCourier(kernel.NewUUID(), "Bob", courier.AvailabilityUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCourier_Validate(t *testing.T) {
	var nilCourier *courier.Courier
	var zero courier.Courier

	require.ErrorIs(t, nilCourier.Validate(), courier.ErrCourierIsNotConstructed)
	require.ErrorIs(t, zero.Validate(), courier.ErrCourierIsNotConstructed)
}

func TestCourier_IsEqual(t *testing.T) {
	c1 := createValidCourier(t)
	c2 := createValidCourier(t)

	assert.True(t, c1.IsEqual(c1))
	assert.False(t, c1.IsEqual(c2))
	assert.False(t, c1.IsEqual(nil))
}

func TestCourier_AvailabilityLifecycle(t *testing.T) {
	t.Run("offer accept release", func(t *testing.T) {
		c := createValidCourier(t)

		require.NoError(t, c.Offer())
		assert.Equal(t, courier.OnDecision, c.Availability())
		require.NoError(t, c.Accept())
		assert.Equal(t, courier.Busy, c.Availability())
		require.NoError(t, c.Release())
		assert.Equal(t, courier.Idle, c.Availability())
	})

	t.Run("offer decline", func(t *testing.T) {
		c := createValidCourier(t)

		require.NoError(t, c.Offer())
		require.NoError(t, c.Decline())
		assert.Equal(t, courier.Idle, c.Availability())
	})

	t.Run("out of order steps are conflicts", func(t *testing.T) {
		c := createValidCourier(t)

		require.ErrorIs(t, c.Accept(), errs.ErrConflict)
		require.ErrorIs(t, c.Decline(), errs.ErrConflict)
		require.ErrorIs(t, c.Release(), errs.ErrConflict)

		require.NoError(t, c.Offer())
		require.ErrorIs(t, c.Offer(), errs.ErrConflict)
		assert.Equal(t, courier.OnDecision, c.Availability())
	})
}

func TestAvailability_Text(t *testing.T) {
	for _, a := range []courier.Availability{courier.Idle, courier.OnDecision, courier.Busy} {
		text, err := a.MarshalText()
		require.NoError(t, err)

		var parsed courier.Availability
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, a, parsed)
	}

	assert.Equal(t, "ON_DECISION", courier.OnDecision.String())
	assert.Equal(t, "UNKNOWN", courier.Availability(9).String())
	_, err := courier.ParseAvailability("SLEEPING")
	require.Error(t, err)
}
