package order

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Item is one line of an order: a food and how many portions of it.
type Item struct {
	foodID   kernel.UUID
	quantity int
}

// NewItem validates the quantity and food reference. Menu membership and food
// availability are checked by services.MenuValidator, which needs the catalog.
func NewItem(foodID kernel.UUID, quantity int) (Item, error) {
	if err := foodID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewInvalidItemError(foodID, "quantity must be positive")
	}
	return Item{foodID: foodID, quantity: quantity}, nil
}

func (i Item) FoodID() kernel.UUID {
	return i.foodID
}

func (i Item) Quantity() int {
	return i.quantity
}
