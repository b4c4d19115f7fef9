package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:           kernel.NewUUID(),
		CreatedAt:    time.Now(),
		CustomerID:   kernel.NewUUID(),
		RestaurantID: kernel.NewUUID(),
		Items:        []order.Item{item},
		Status:       order.DelivererPending,
	})
	require.NoError(t, err)
	return o
}

func newCourier(t *testing.T, name string, availability courier.Availability) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(kernel.NewUUID(), name, availability)
	require.NoError(t, err)
	return c
}

func reverse(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func TestCourierDispatcher_Candidates(t *testing.T) {
	alice := newCourier(t, "Alice", courier.Idle)
	bob := newCourier(t, "Bob", courier.Idle)
	carol := newCourier(t, "Carol", courier.Busy)

	t.Run("should return idle couriers in shuffled order", func(t *testing.T) {
		dispatcher := services.NewCourierDispatcherWithShuffle(reverse)

		candidates, err := dispatcher.Candidates(pendingOrder(t), []*courier.Courier{alice, bob, carol})

		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.True(t, candidates[0].IsEqual(bob))
		assert.True(t, candidates[1].IsEqual(alice))
	})

	t.Run("should skip excluded courier", func(t *testing.T) {
		dispatcher := services.NewCourierDispatcher()

		candidates, err := dispatcher.Candidates(pendingOrder(t), []*courier.Courier{alice, bob}, alice.ID())

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.True(t, candidates[0].IsEqual(bob))
	})

	t.Run("should report no available courier", func(t *testing.T) {
		dispatcher := services.NewCourierDispatcher()

		_, err := dispatcher.Candidates(pendingOrder(t), nil)
		require.ErrorIs(t, err, errs.ErrNoAvailableCourier)

		_, err = dispatcher.Candidates(pendingOrder(t), []*courier.Courier{carol})
		require.ErrorIs(t, err, errs.ErrNoAvailableCourier)

		_, err = dispatcher.Candidates(pendingOrder(t), []*courier.Courier{alice}, alice.ID())
		require.ErrorIs(t, err, errs.ErrNoAvailableCourier)
		assert.Equal(t, errs.KindNoAvailableCourier, errs.KindOf(err))
	})

	t.Run("should refuse bound order", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.OfferTo(carol.ID(), time.Now()))

		_, err := services.NewCourierDispatcher().Candidates(o, []*courier.Courier{alice})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should refuse invalid order", func(t *testing.T) {
		_, err := services.NewCourierDispatcher().Candidates(&order.Order{}, []*courier.Courier{alice})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("every idle courier can come first", func(t *testing.T) {
		dispatcher := services.NewCourierDispatcher()
		idle := []*courier.Courier{alice, bob}
		seen := map[string]bool{}

		for range 200 {
			candidates, err := dispatcher.Candidates(pendingOrder(t), idle)
			require.NoError(t, err)
			seen[candidates[0].Name()] = true
		}

		assert.True(t, seen["Alice"])
		assert.True(t, seen["Bob"])
	})
}
