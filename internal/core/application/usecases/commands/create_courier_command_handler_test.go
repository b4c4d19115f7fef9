package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCourierCommandHandler_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	uow := &MockUoW{}
	factory := &MockCourierUoWFactory{}
	courierRepo := &MockCourierRepository{}

	cmd, err := commands.NewCreateCourierCommand("Bob")
	require.NoError(t, err)

	mock.InOrder(
		factory.On("Create").Return(uow),
		uow.On("Begin", ctx).Return(nil),
		uow.On("CourierRepository").Return(courierRepo),
		courierRepo.On("Add", ctx, mock.MatchedBy(func(c *courier.Courier) bool {
			return c.ID().IsEqual(cmd.CourierID()) &&
				c.Name() == "Bob" &&
				c.Availability() == courier.Idle
		})).Return(nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewCreateCourierCommandHandler(factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	uow.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_AddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	uow := &MockUoW{}
	factory := &MockCourierUoWFactory{}
	courierRepo := &MockCourierRepository{}
	addErr := errors.New("disk full")

	cmd, err := commands.NewCreateCourierCommand("Bob")
	require.NoError(t, err)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("CourierRepository").Return(courierRepo)
	courierRepo.On("Add", ctx, mock.Anything).Return(addErr)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewCreateCourierCommandHandler(factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, addErr)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertCalled(t, "Rollback", ctx)
}
