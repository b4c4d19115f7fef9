// Package catalogrepo persists customers, restaurants and restaurant menus.
package catalogrepo

import (
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Address string    `gorm:"type:text;not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// RestaurantDTO owns its menu through the restaurant_menu join table.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Address string    `gorm:"type:text;not null"`
	Menu    []FoodDTO `gorm:"many2many:restaurant_menu;joinForeignKey:RestaurantID;joinReferences:FoodID;constraint:OnDelete:CASCADE"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type FoodDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Availability int             `gorm:"type:smallint;not null"`
}

func (FoodDTO) TableName() string {
	return "foods"
}

func customerFromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{ID: c.ID().Bytes(), Name: c.Name(), Address: c.Address()}
}

func customerToDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(id, dto.Name, dto.Address)
}

func restaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{ID: r.ID().Bytes(), Name: r.Name(), Address: r.Address()}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return restaurant.NewRestaurant(id, dto.Name, dto.Address)
}

func foodFromDomain(f *restaurant.Food) FoodDTO {
	return FoodDTO{
		ID:           f.ID().Bytes(),
		Name:         f.Name(),
		Price:        f.Price(),
		Availability: int(f.Availability()),
	}
}

func foodToDomain(dto FoodDTO) (*restaurant.Food, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return restaurant.NewFood(id, dto.Name, dto.Price, restaurant.FoodAvailability(dto.Availability))
}
