package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood constructor")

// FoodAvailability tells whether a food can currently be ordered.
type FoodAvailability int

const (
	FoodAvailabilityUnknown FoodAvailability = iota
	Available
	Unavailable
)

func (a FoodAvailability) String() string {
	switch a {
	case Available:
		return "AVAILABLE"
	case Unavailable:
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}

func (a FoodAvailability) Validate() error {
	if a != Available && a != Unavailable {
		return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%d is not a valid food availability", a))
	}
	return nil
}

// ParseFoodAvailability converts "AVAILABLE" or "UNAVAILABLE".
func ParseFoodAvailability(s string) (FoodAvailability, error) {
	switch s {
	case "AVAILABLE":
		return Available, nil
	case "UNAVAILABLE":
		return Unavailable, nil
	default:
		return FoodAvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%q is not a valid food availability", s))
	}
}

// Food is a dish on one or more restaurant menus. Menu membership is kept by
// the repository (the restaurant_menu association), not by Food itself.
type Food struct {
	id           kernel.UUID
	name         string
	price        decimal.Decimal
	availability FoodAvailability
	guard        guard.ConstructorGuard
}

// NewFood creates a food. Price must not be negative.
//
// Example:
//
//	price := decimal.RequireFromString("12.50")
//	pizza, err := restaurant.NewFood(kernel.NewUUID(), "Margherita", price, restaurant.Available)
func NewFood(id kernel.UUID, name string, price decimal.Decimal, availability FoodAvailability) (*Food, error) {
	f := &Food{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		f.setName(name),
		f.setPrice(price),
		availability.Validate(),
	); err != nil {
		return nil, err
	}

	f.id = id
	f.availability = availability
	return f, nil
}

func (f *Food) Validate() error {
	if f == nil {
		return ErrFoodIsNotConstructed
	}
	return f.guard.Validate(ErrFoodIsNotConstructed)
}

func (f *Food) ID() kernel.UUID {
	return f.id
}

func (f *Food) Name() string {
	return f.name
}

func (f *Food) Price() decimal.Decimal {
	return f.price
}

func (f *Food) Availability() FoodAvailability {
	return f.availability
}

func (f *Food) IsAvailable() bool {
	return f.availability == Available
}

func (f *Food) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	f.name = name
	return nil
}

func (f *Food) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0", "unbounded")
	}
	f.price = price
	return nil
}
