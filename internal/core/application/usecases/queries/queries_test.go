package queries_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructors_RejectMissingIDs(t *testing.T) {
	_, err := queries.NewListCurrentOrdersQuery(kernel.RoleCustomer, kernel.UUID{})
	require.Error(t, err)

	_, err = queries.NewListCurrentOrdersQuery(kernel.RoleUnknown, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetOrderQuery(kernel.RoleRestaurant, kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)

	_, err = queries.NewGetSuggestedOrderQuery(kernel.UUID{})
	require.Error(t, err)

	_, err = queries.NewGetCurrentDeliveryQuery(kernel.UUID{})
	require.Error(t, err)

	_, err = queries.NewGetMenuQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.ListCurrentOrdersQuery{}.Validate(), queries.ErrListCurrentOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetSuggestedOrderQuery{}.Validate(), queries.ErrGetSuggestedOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetCurrentDeliveryQuery{}.Validate(), queries.ErrGetCurrentDeliveryQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetMenuQuery{}.Validate(), queries.ErrGetMenuQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetAllCouriersQuery{}.Validate(), queries.ErrGetAllCouriersQueryIsNotConstructed)
}

func TestNewGetOrderQuery_Valid(t *testing.T) {
	actorID, orderID := kernel.NewUUID(), kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(kernel.RoleCourier, actorID, orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, kernel.RoleCourier, query.Role())
	assert.Equal(t, actorID, query.ActorID())
	assert.Equal(t, orderID, query.OrderID())
}

func newTestOrder(t *testing.T, customerID, restaurantID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, []order.Item{item}, createdAt)
	require.NoError(t, err)
	return o
}
