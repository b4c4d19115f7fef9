package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddFoodCommandIsNotConstructed = errors.New(
	"AddFoodCommand must be created via NewAddFoodCommand constructor",
)

// AddFoodCommand puts a new food on a restaurant's menu.
//
// Example:
//
//	cmd, err := NewAddFoodCommand(restaurantID, "Margherita", decimal.RequireFromString("9.90"), restaurant.Available)
type AddFoodCommand struct {
	foodID       kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal
	availability restaurant.FoodAvailability

	guard guard.ConstructorGuard
}

func NewAddFoodCommand(
	restaurantID kernel.UUID,
	name string,
	price decimal.Decimal,
	availability restaurant.FoodAvailability,
) (AddFoodCommand, error) {
	var restaurantErr, nameErr error
	if err := restaurantID.Validate(); err != nil {
		restaurantErr = errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	if strings.TrimSpace(name) == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(restaurantErr, nameErr, availability.Validate()); err != nil {
		return AddFoodCommand{}, err
	}

	return AddFoodCommand{
		foodID:       kernel.NewUUID(),
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AddFoodCommand) Validate() error {
	return c.guard.Validate(ErrAddFoodCommandIsNotConstructed)
}

func (c AddFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}

func (c AddFoodCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c AddFoodCommand) Name() string {
	return c.name
}

func (c AddFoodCommand) Price() decimal.Decimal {
	return c.price
}

func (c AddFoodCommand) Availability() restaurant.FoodAvailability {
	return c.availability
}
