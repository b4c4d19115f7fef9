package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists every food on a restaurant's menu, available or not.
type GetMenuQuery struct {
	restaurantID kernel.UUID
	guard        guard.ConstructorGuard
}

func NewGetMenuQuery(restaurantID kernel.UUID) (GetMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMenuQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	return GetMenuQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

func (q GetMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

type FoodResponse struct {
	ID           kernel.UUID
	Name         string
	Price        decimal.Decimal
	Availability restaurant.FoodAvailability
}

type GetMenuQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetMenuQueryHandler(uowFactory ports.UnitOfWorkFactory) GetMenuQueryHandler {
	return GetMenuQueryHandler{uowFactory: uowFactory}
}

func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]FoodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if _, err := uow.RestaurantRepository().Get(ctx, query.RestaurantID()); err != nil {
		return nil, err
	}

	foods, err := uow.FoodRepository().ListByRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	menu := make([]FoodResponse, 0, len(foods))
	for _, f := range foods {
		menu = append(menu, FoodResponse{
			ID:           f.ID(),
			Name:         f.Name(),
			Price:        f.Price(),
			Availability: f.Availability(),
		})
	}
	return menu, nil
}
