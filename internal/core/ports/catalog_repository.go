package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// FoodRepository stores foods and their restaurant menu membership.
type FoodRepository interface {
	// Add persists a new food and lists it on the menu of restaurantID.
	Add(ctx context.Context, restaurantID kernel.UUID, food *restaurant.Food) error

	Get(ctx context.Context, id kernel.UUID) (*restaurant.Food, error)

	// ListByRestaurant returns the menu of a restaurant.
	ListByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.Food, error)
}

type RestaurantRepository interface {
	Add(ctx context.Context, restaurant *restaurant.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}

type CustomerRepository interface {
	Add(ctx context.Context, customer *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
