package catalogrepo

import (
	"context"
	"errors"
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := customerFromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}
	return customerToDomain(dto)
}

type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Add(ctx context.Context, rest *restaurant.Restaurant) error {
	if err := rest.Validate(); err != nil {
		return err
	}
	dto := restaurantFromDomain(rest)
	return r.db.WithContext(ctx).Omit("Menu").Create(&dto).Error
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}
	return restaurantToDomain(dto)
}

// GormFoodRepository stores foods and their place on restaurant menus.
type GormFoodRepository struct {
	db *gorm.DB
}

func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// Add creates the food and appends it to the restaurant's menu.
func (r *GormFoodRepository) Add(ctx context.Context, restaurantID kernel.UUID, food *restaurant.Food) error {
	if err := errors.Join(restaurantID.Validate(), food.Validate()); err != nil {
		return err
	}

	dto := foodFromDomain(food)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}

	return db.Model(&RestaurantDTO{ID: restaurantID.Bytes()}).Association("Menu").Append(&dto)
}

func (r *GormFoodRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Food, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food", id.String())
		}
		return nil, err
	}
	return foodToDomain(dto)
}

// ListByRestaurant returns the restaurant's menu sorted by food name.
func (r *GormFoodRepository) ListByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.Food, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []FoodDTO
	err := r.db.WithContext(ctx).
		Model(&RestaurantDTO{ID: restaurantID.Bytes()}).
		Association("Menu").
		Find(&dtos)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(dtos, func(a, b FoodDTO) int {
		return strings.Compare(a.Name, b.Name)
	})

	menu := make([]*restaurant.Food, 0, len(dtos))
	for _, dto := range dtos {
		f, err := foodToDomain(dto)
		if err != nil {
			return nil, err
		}
		menu = append(menu, f)
	}
	return menu, nil
}
