package orderrepo

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDomain_KeepsItemPositions(t *testing.T) {
	first, err := order.NewItem(kernel.NewUUID(), 3)
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{first, second}, time.Now())
	require.NoError(t, err)

	dto := fromDomain(o)

	require.Len(t, dto.Items, 2)
	assert.Equal(t, 0, dto.Items[0].Position)
	assert.Equal(t, first.FoodID().Bytes(), dto.Items[0].FoodID)
	assert.Equal(t, 1, dto.Items[1].Position)
	assert.Nil(t, dto.CourierID)

	restored, err := toDomain(dto)
	require.NoError(t, err)
	assert.Equal(t, o.Items(), restored.Items())
}

func TestToDomain_RejectsCourierOnUndispatchedOrder(t *testing.T) {
	courierID := uuid.New()
	dto := OrderDTO{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: uuid.New(),
		CourierID:    &courierID,
		Status:       int(order.RestaurantAccept),
		CreatedAt:    time.Now(),
		Items:        []OrderItemDTO{{FoodID: uuid.New(), Quantity: 1}},
	}

	_, err := toDomain(dto)

	require.Error(t, err)
}
