package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
)

type FoodRepository struct {
	uow *UnitOfWork
}

func (r *FoodRepository) Add(ctx context.Context, restaurantID kernel.UUID, food *restaurant.Food) error {
	if err := food.Validate(); err != nil {
		return err
	}

	return r.uow.with(ctx, func(s *state) error {
		if _, ok := s.foods[food.ID()]; ok {
			return fmt.Errorf("memory: food %s already exists", food.ID())
		}
		s.foods[food.ID()] = food
		s.menus[restaurantID] = append(s.menus[restaurantID], food.ID())
		return nil
	})
}

func (r *FoodRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Food, error) {
	var food *restaurant.Food
	err := r.uow.with(ctx, func(s *state) error {
		var ok bool
		if food, ok = s.foods[id]; !ok {
			return errs.NewObjectNotFoundError("food", id)
		}
		return nil
	})
	return food, err
}

func (r *FoodRepository) ListByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.Food, error) {
	var menu []*restaurant.Food
	err := r.uow.with(ctx, func(s *state) error {
		for _, id := range s.menus[restaurantID] {
			menu = append(menu, s.foods[id])
		}
		return nil
	})
	slices.SortStableFunc(menu, func(a, b *restaurant.Food) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return menu, err
}

type RestaurantRepository struct {
	uow *UnitOfWork
}

func (r *RestaurantRepository) Add(ctx context.Context, rest *restaurant.Restaurant) error {
	if err := rest.Validate(); err != nil {
		return err
	}

	return r.uow.with(ctx, func(s *state) error {
		if _, ok := s.restaurants[rest.ID()]; ok {
			return fmt.Errorf("memory: restaurant %s already exists", rest.ID())
		}
		s.restaurants[rest.ID()] = rest
		return nil
	})
}

func (r *RestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	var rest *restaurant.Restaurant
	err := r.uow.with(ctx, func(s *state) error {
		var ok bool
		if rest, ok = s.restaurants[id]; !ok {
			return errs.NewObjectNotFoundError("restaurant", id)
		}
		return nil
	})
	return rest, err
}

type CustomerRepository struct {
	uow *UnitOfWork
}

func (r *CustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return r.uow.with(ctx, func(s *state) error {
		if _, ok := s.customers[c.ID()]; ok {
			return fmt.Errorf("memory: customer %s already exists", c.ID())
		}
		s.customers[c.ID()] = c
		return nil
	})
}

func (r *CustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	var c *customer.Customer
	err := r.uow.with(ctx, func(s *state) error {
		var ok bool
		if c, ok = s.customers[id]; !ok {
			return errs.NewObjectNotFoundError("customer", id)
		}
		return nil
	})
	return c, err
}
