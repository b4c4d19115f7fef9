package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// offeredOrder returns a DELIVERER_PENDING order offered to a courier that is ON_DECISION.
func offeredOrder(t *testing.T) (*order.Order, *courier.Courier) {
	t.Helper()
	o := acceptedOrder(t)
	require.NoError(t, o.ChangeStatus(kernel.RoleRestaurant, order.DelivererPending, time.Now()))
	c, err := courier.RestoreCourier(kernel.NewUUID(), "Bob", courier.OnDecision)
	require.NoError(t, err)
	require.NoError(t, o.OfferTo(c.ID(), time.Now()))
	o.ClearEvents()
	return o, c
}

func TestUpdateOrderStatusAsCourier_Accept(t *testing.T) {
	// Arrange
	ctx := t.Context()
	uow := &MockUoW{}
	factory := &MockUoWFactory{}
	orderRepo := &MockOrderRepository{}
	courierRepo := &MockCourierRepository{}

	o, c := offeredOrder(t)
	cmd, err := commands.NewUpdateOrderStatusAsCourierCommand(c.ID(), o.ID(), order.Delivering)
	require.NoError(t, err)

	mock.InOrder(
		factory.On("Create").Return(uow),
		uow.On("Begin", ctx).Return(nil),
		uow.On("OrderRepository").Return(orderRepo),
		uow.On("CourierRepository").Return(courierRepo),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil),
		courierRepo.On("Get", ctx, c.ID()).Return(c, nil),
		courierRepo.On("UpdateAvailability", ctx, c, courier.OnDecision).Return(nil),
		orderRepo.On("Update", ctx, o, order.DelivererPending).Return(nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewUpdateOrderStatusAsCourierCommandHandler(factory, services.NewCourierDispatcher())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.Delivering, o.Status())
	assert.Equal(t, courier.Busy, c.Availability())
	assert.True(t, o.IsBoundTo(c.ID()))
	courierRepo.AssertExpectations(t)
}

func TestUpdateOrderStatusAsCourier_RejectWithoutOtherCourier(t *testing.T) {
	// Arrange
	ctx := t.Context()
	uow := &MockUoW{}
	factory := &MockUoWFactory{}
	orderRepo := &MockOrderRepository{}
	courierRepo := &MockCourierRepository{}

	o, c := offeredOrder(t)
	cmd, err := commands.NewUpdateOrderStatusAsCourierCommand(c.ID(), o.ID(), order.DelivererPending)
	require.NoError(t, err)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CourierRepository").Return(courierRepo)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
	courierRepo.On("Get", ctx, c.ID()).Return(c, nil)
	courierRepo.On("UpdateAvailability", ctx, c, courier.OnDecision).Return(nil)
	courierRepo.On("ListByAvailability", ctx, courier.Idle).Return([]*courier.Courier{c}, nil)
	orderRepo.On("Update", ctx, o, order.DelivererPending).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewUpdateOrderStatusAsCourierCommandHandler(factory, services.NewCourierDispatcher())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.DelivererPending, o.Status())
	assert.Nil(t, o.Courier(), "the rejecting courier must not be offered the order again")
	assert.Equal(t, courier.Idle, c.Availability())
	courierRepo.AssertNumberOfCalls(t, "UpdateAvailability", 1)
}

func TestUpdateOrderStatusAsCourier_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		command func(o *order.Order, c *courier.Courier) (commands.UpdateOrderStatusAsCourierCommand, error)
		wantErr error
	}{
		{
			name: "courier the order is not offered to",
			command: func(o *order.Order, _ *courier.Courier) (commands.UpdateOrderStatusAsCourierCommand, error) {
				return commands.NewUpdateOrderStatusAsCourierCommand(kernel.NewUUID(), o.ID(), order.Delivering)
			},
			wantErr: errs.ErrNotOwner,
		},
		{
			name: "done before delivering",
			command: func(o *order.Order, c *courier.Courier) (commands.UpdateOrderStatusAsCourierCommand, error) {
				return commands.NewUpdateOrderStatusAsCourierCommand(c.ID(), o.ID(), order.Done)
			},
			wantErr: errs.ErrInvalidTransition,
		},
		{
			name: "stale expected status",
			command: func(o *order.Order, c *courier.Courier) (commands.UpdateOrderStatusAsCourierCommand, error) {
				cmd, err := commands.NewUpdateOrderStatusAsCourierCommand(c.ID(), o.ID(), order.Done)
				return cmd.WithExpectedStatus(order.Delivering), err
			},
			wantErr: errs.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctx := t.Context()
			uow := &MockUoW{}
			factory := &MockUoWFactory{}
			orderRepo := &MockOrderRepository{}
			courierRepo := &MockCourierRepository{}

			o, c := offeredOrder(t)
			cmd, err := tt.command(o, c)
			require.NoError(t, err)

			factory.On("Create").Return(uow)
			uow.On("Begin", ctx).Return(nil)
			uow.On("OrderRepository").Return(orderRepo)
			uow.On("CourierRepository").Return(courierRepo)
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
			uow.On("Rollback", ctx).Return(nil)

			handler := commands.NewUpdateOrderStatusAsCourierCommandHandler(factory, services.NewCourierDispatcher())

			// Act
			err = handler.Handle(ctx, cmd)

			// Assert
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, courier.OnDecision, c.Availability())
			courierRepo.AssertNotCalled(t, "UpdateAvailability", mock.Anything, mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}
