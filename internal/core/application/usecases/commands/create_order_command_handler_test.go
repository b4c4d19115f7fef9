package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type createOrderFixture struct {
	uow            *MockUoW
	factory        *MockOrderUoWFactory
	orderRepo      *MockOrderRepository
	foodRepo       *MockFoodRepository
	restaurantRepo *MockRestaurantRepository
	customerRepo   *MockCustomerRepository

	customer   *customer.Customer
	restaurant *restaurant.Restaurant
	pizza      *restaurant.Food
}

func newCreateOrderFixture(t *testing.T) createOrderFixture {
	t.Helper()

	c, err := customer.NewCustomer(kernel.NewUUID(), "Ann", "1 Main St")
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), "Luigi", "2 Side St")
	require.NoError(t, err)
	pizza, err := restaurant.NewFood(kernel.NewUUID(), "Margherita", decimal.NewFromInt(10), restaurant.Available)
	require.NoError(t, err)

	return createOrderFixture{
		uow:            &MockUoW{},
		factory:        &MockOrderUoWFactory{},
		orderRepo:      &MockOrderRepository{},
		foodRepo:       &MockFoodRepository{},
		restaurantRepo: &MockRestaurantRepository{},
		customerRepo:   &MockCustomerRepository{},
		customer:       c,
		restaurant:     r,
		pizza:          pizza,
	}
}

func (f createOrderFixture) command(t *testing.T, foodID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	item, err := order.NewItem(foodID, 2)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), f.customer.ID(), f.restaurant.ID(), []order.Item{item})
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	cmd := f.command(t, f.pizza.ID())

	mock.InOrder(
		f.factory.On("Create").Return(f.uow),
		f.uow.On("Begin", ctx).Return(nil),
		f.uow.On("CustomerRepository").Return(f.customerRepo),
		f.customerRepo.On("Get", ctx, f.customer.ID()).Return(f.customer, nil),
		f.uow.On("RestaurantRepository").Return(f.restaurantRepo),
		f.restaurantRepo.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil),
		f.uow.On("FoodRepository").Return(f.foodRepo),
		f.foodRepo.On("ListByRestaurant", ctx, f.restaurant.ID()).Return([]*restaurant.Food{f.pizza}, nil),
		f.uow.On("OrderRepository").Return(f.orderRepo),
		f.orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(cmd.OrderID()) &&
				o.Status() == order.RestaurantPending &&
				o.Courier() == nil
		})).Return(nil),
		f.uow.On("Commit", ctx).Return(nil),
		f.uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewCreateOrderCommandHandler(f.factory, services.NewMenuValidator())

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	f.uow.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_FoodNotOnMenu(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	cmd := f.command(t, kernel.NewUUID())

	f.factory.On("Create").Return(f.uow)
	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("CustomerRepository").Return(f.customerRepo)
	f.customerRepo.On("Get", ctx, f.customer.ID()).Return(f.customer, nil)
	f.uow.On("RestaurantRepository").Return(f.restaurantRepo)
	f.restaurantRepo.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil)
	f.uow.On("FoodRepository").Return(f.foodRepo)
	f.foodRepo.On("ListByRestaurant", ctx, f.restaurant.ID()).Return([]*restaurant.Food{f.pizza}, nil)
	f.uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewCreateOrderCommandHandler(f.factory, services.NewMenuValidator())

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrInvalidItem)
	f.uow.AssertNotCalled(t, "OrderRepository")
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_UnknownCustomer(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	cmd := f.command(t, f.pizza.ID())

	f.factory.On("Create").Return(f.uow)
	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("CustomerRepository").Return(f.customerRepo)
	f.customerRepo.On("Get", ctx, f.customer.ID()).
		Return(nil, errs.NewObjectNotFoundError("customer", f.customer.ID()))
	f.uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewCreateOrderCommandHandler(f.factory, services.NewMenuValidator())

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_BeginError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	cmd := f.command(t, f.pizza.ID())
	beginErr := errors.New("connection refused")

	f.factory.On("Create").Return(f.uow)
	f.uow.On("Begin", ctx).Return(beginErr)

	handler := commands.NewCreateOrderCommandHandler(f.factory, services.NewMenuValidator())

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, beginErr)
	f.uow.AssertNotCalled(t, "Rollback", ctx)
}

func TestCreateOrderCommandHandler_NotConstructedCommand(t *testing.T) {
	f := newCreateOrderFixture(t)
	handler := commands.NewCreateOrderCommandHandler(f.factory, services.NewMenuValidator())

	err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}
