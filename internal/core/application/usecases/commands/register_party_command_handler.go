package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// RegisterCustomerCommandHandler stores new customers.
type RegisterCustomerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRegisterCustomerCommandHandler(uowFactory CatalogUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{uowFactory: uowFactory}
}

func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RegisterRestaurantCommandHandler stores new restaurants.
type RegisterRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRegisterRestaurantCommandHandler(uowFactory CatalogUoWFactory) RegisterRestaurantCommandHandler {
	return RegisterRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h RegisterRestaurantCommandHandler) Handle(ctx context.Context, cmd RegisterRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
