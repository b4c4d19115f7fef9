package services

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
)

// MenuValidator checks order items against a restaurant menu before an order
// is created.
type MenuValidator struct{}

func NewMenuValidator() MenuValidator {
	return MenuValidator{}
}

// Validate returns an InvalidItemError for the first item whose food is not on
// the menu or is UNAVAILABLE. Quantities are already positive by construction
// of order.Item.
func (MenuValidator) Validate(menu []*restaurant.Food, items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	byID := make(map[kernel.UUID]*restaurant.Food, len(menu))
	for _, f := range menu {
		if err := f.Validate(); err != nil {
			return err
		}
		byID[f.ID()] = f
	}

	for _, item := range items {
		if item.Quantity() <= 0 {
			return errs.NewInvalidItemError(item.FoodID(), "quantity must be positive")
		}
		f, ok := byID[item.FoodID()]
		if !ok {
			return errs.NewInvalidItemError(item.FoodID(), "is not on the restaurant menu")
		}
		if !f.IsAvailable() {
			return errs.NewInvalidItemError(item.FoodID(), "is unavailable")
		}
	}

	return nil
}
