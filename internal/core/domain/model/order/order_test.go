package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), newItems(t), now)
	require.NoError(t, err)
	return o
}

func restoreOrder(t *testing.T, status order.Status, courierID *kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:           kernel.NewUUID(),
		CreatedAt:    now,
		CustomerID:   kernel.NewUUID(),
		RestaurantID: kernel.NewUUID(),
		CourierID:    courierID,
		Items:        newItems(t),
		Status:       status,
		Version:      3,
	})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	t.Run("should create pending order without courier", func(t *testing.T) {
		items := newItems(t)

		o, err := order.NewOrder(id, customerID, restaurantID, items, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.Customer().IsEqual(customerID))
		assert.True(t, o.Restaurant().IsEqual(restaurantID))
		assert.Equal(t, order.RestaurantPending, o.Status())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.OfferedAt())
		assert.Equal(t, items, o.Items())
		assert.Equal(t, now, o.CreatedAt())
		assert.Zero(t, o.Version())
		assert.Empty(t, o.Events())
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, restaurantID, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should reject zero value items", func(t *testing.T) {
		_, err := order.NewOrder(id, customerID, restaurantID, []order.Item{{}}, now)

		require.ErrorIs(t, err, errs.ErrInvalidItem)
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		var zero kernel.UUID

		o, err := order.NewOrder(zero, zero, zero, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "restaurant")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore bound courier and version", func(t *testing.T) {
		courierID := kernel.NewUUID()

		o := restoreOrder(t, order.Delivering, &courierID)

		assert.Equal(t, order.Delivering, o.Status())
		assert.True(t, o.IsBoundTo(courierID))
		assert.Equal(t, 3, o.Version())
	})

	t.Run("should refuse courier on orders the restaurant still holds", func(t *testing.T) {
		courierID := kernel.NewUUID()
		for _, status := range []order.Status{order.RestaurantPending, order.RestaurantAccept} {
			_, err := order.RestoreOrder(order.Snapshot{
				ID:           kernel.NewUUID(),
				CustomerID:   kernel.NewUUID(),
				RestaurantID: kernel.NewUUID(),
				CourierID:    &courierID,
				Items:        newItems(t),
				Status:       status,
			})

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should refuse unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{
			ID:           kernel.NewUUID(),
			CustomerID:   kernel.NewUUID(),
			RestaurantID: kernel.NewUUID(),
			Items:        newItems(t),
		})

		require.Error(t, err)
	})

	t.Run("snapshot should round trip", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := restoreOrder(t, order.DelivererPending, nil)
		require.NoError(t, o.OfferTo(courierID, now))

		restored, err := order.RestoreOrder(o.Snapshot())

		require.NoError(t, err)
		assert.Equal(t, o.Snapshot(), restored.Snapshot())
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	var zero order.Order

	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
	require.NoError(t, newOrder(t).Validate())
}

func TestOrder_IsEqual(t *testing.T) {
	o1 := newOrder(t)
	o2 := newOrder(t)

	assert.True(t, o1.IsEqual(o1))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}

func TestOrder_CheckOwner(t *testing.T) {
	courierID := kernel.NewUUID()
	o := restoreOrder(t, order.Delivering, &courierID)
	stranger := kernel.NewUUID()

	require.NoError(t, o.CheckOwner(kernel.RoleCustomer, o.Customer()))
	require.NoError(t, o.CheckOwner(kernel.RoleRestaurant, o.Restaurant()))
	require.NoError(t, o.CheckOwner(kernel.RoleCourier, courierID))

	for _, role := range []kernel.Role{kernel.RoleCustomer, kernel.RoleRestaurant, kernel.RoleCourier} {
		err := o.CheckOwner(role, stranger)

		require.ErrorIs(t, err, errs.ErrNotOwner, role.String())
	}

	t.Run("restaurant id is not accepted for another role", func(t *testing.T) {
		require.ErrorIs(t, o.CheckOwner(kernel.RoleCustomer, o.Restaurant()), errs.ErrNotOwner)
	})

	t.Run("unbound order has no courier owner", func(t *testing.T) {
		unbound := restoreOrder(t, order.DelivererPending, nil)

		require.ErrorIs(t, unbound.CheckOwner(kernel.RoleCourier, courierID), errs.ErrNotOwner)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should move along allowed edge and record event", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(kernel.RoleRestaurant, order.RestaurantAccept, now)

		require.NoError(t, err)
		assert.Equal(t, order.RestaurantAccept, o.Status())
		events := o.Events()
		require.Len(t, events, 1)
		assert.Equal(t, order.RestaurantPending, events[0].From)
		assert.Equal(t, order.RestaurantAccept, events[0].To)
		assert.Equal(t, "restaurant", events[0].Actor)
		assert.True(t, events[0].OrderID.IsEqual(o.ID()))

		o.ClearEvents()
		assert.Empty(t, o.Events())
	})

	t.Run("should leave order untouched on forbidden edge", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(kernel.RoleCourier, order.Delivering, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.RestaurantPending, o.Status())
		assert.Empty(t, o.Events())
	})

	t.Run("customer can never change status", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.ChangeStatus(kernel.RoleCustomer, order.Cancel, now), errs.ErrInvalidTransition)
	})

	t.Run("terminal order refuses every change", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := restoreOrder(t, order.Done, &courierID)

		for _, to := range order.AllStatuses() {
			require.ErrorIs(t, o.ChangeStatus(kernel.RoleCourier, to, now), errs.ErrInvalidTransition)
			require.ErrorIs(t, o.ChangeStatus(kernel.RoleRestaurant, to, now), errs.ErrInvalidTransition)
		}
	})
}

func TestOrder_OfferTo(t *testing.T) {
	courierID := kernel.NewUUID()

	t.Run("should bind courier on deliverer pending order", func(t *testing.T) {
		o := restoreOrder(t, order.DelivererPending, nil)

		require.NoError(t, o.OfferTo(courierID, now))

		assert.True(t, o.IsBoundTo(courierID))
		require.NotNil(t, o.OfferedAt())
		assert.Equal(t, now, *o.OfferedAt())

		events := o.Events()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventCourierOffered, events[0].Type)
		require.NotNil(t, events[0].CourierID)
		assert.True(t, events[0].CourierID.IsEqual(courierID))
		assert.Empty(t, events[0].Actor)
		assert.Equal(t, order.DelivererPending, events[0].To)
	})

	t.Run("should refuse second binding", func(t *testing.T) {
		o := restoreOrder(t, order.DelivererPending, nil)
		require.NoError(t, o.OfferTo(courierID, now))

		require.Error(t, o.OfferTo(kernel.NewUUID(), now))
		assert.True(t, o.IsBoundTo(courierID))
	})

	t.Run("should refuse binding outside deliverer pending", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.OfferTo(courierID, now))
		assert.Nil(t, o.Courier())
	})

	t.Run("should refuse zero courier", func(t *testing.T) {
		o := restoreOrder(t, order.DelivererPending, nil)

		require.Error(t, o.OfferTo(kernel.UUID{}, now))
	})
}

func TestOrder_Unbind(t *testing.T) {
	courierID := kernel.NewUUID()

	t.Run("should clear binding and offer time", func(t *testing.T) {
		o := restoreOrder(t, order.DelivererPending, nil)
		require.NoError(t, o.OfferTo(courierID, now))

		o.ClearEvents()

		require.NoError(t, o.Unbind(now))

		assert.Nil(t, o.Courier())
		assert.Nil(t, o.OfferedAt())

		events := o.Events()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventCourierReleased, events[0].Type)
		require.NotNil(t, events[0].CourierID)
		assert.True(t, events[0].CourierID.IsEqual(courierID))
	})

	t.Run("should record nothing when already unbound", func(t *testing.T) {
		o := restoreOrder(t, order.DelivererPending, nil)

		require.NoError(t, o.Unbind(now))

		assert.Empty(t, o.Events())
	})

	t.Run("should keep binding of delivering order", func(t *testing.T) {
		o := restoreOrder(t, order.Delivering, &courierID)

		require.Error(t, o.Unbind(now))
		assert.True(t, o.IsBoundTo(courierID))
	})
}

func TestOrder_OfferExpired(t *testing.T) {
	o := restoreOrder(t, order.DelivererPending, nil)
	require.NoError(t, o.OfferTo(kernel.NewUUID(), now))

	assert.False(t, o.OfferExpired(now.Add(time.Minute), 2*time.Minute))
	assert.True(t, o.OfferExpired(now.Add(2*time.Minute), 2*time.Minute))
	assert.False(t, o.OfferExpired(now.Add(time.Hour), 0))

	unbound := restoreOrder(t, order.DelivererPending, nil)
	assert.False(t, unbound.OfferExpired(now.Add(time.Hour), time.Minute))
}

func TestOrder_IncrementVersion(t *testing.T) {
	o := newOrder(t)

	o.IncrementVersion()
	o.IncrementVersion()

	assert.Equal(t, 2, o.Version())
}
