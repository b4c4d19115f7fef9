package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
)

// CreateOrderCommandHandler places a new order in RESTAURANT_PENDING after
// checking that the customer and restaurant exist and that every item is an
// AVAILABLE food from the restaurant's menu.
//
// Creation is not idempotent: each command carries a fresh order ID, so a
// blindly retried request creates a second order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.MenuValidator
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, validator services.MenuValidator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		now:        time.Now,
	}
}

// Handle validates the items and stores the order. Nothing is written when
// any item is invalid.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}
	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	menu, err := uow.FoodRepository().ListByRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if err = h.validator.Validate(menu, cmd.Items()); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.RestaurantID(), cmd.Items(), h.now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
