package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/restaurant"
)

// AddFoodCommandHandler creates a food and lists it on the restaurant menu.
type AddFoodCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddFoodCommandHandler(uowFactory CatalogUoWFactory) AddFoodCommandHandler {
	return AddFoodCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound when the restaurant does not exist.
func (h AddFoodCommandHandler) Handle(ctx context.Context, cmd AddFoodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	food, err := restaurant.NewFood(cmd.FoodID(), cmd.Name(), cmd.Price(), cmd.Availability())
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

	if _, err = uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	if err = uow.FoodRepository().Add(ctx, cmd.RestaurantID(), food); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
