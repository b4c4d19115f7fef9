// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status, courier and version are the columns conditional updates match on.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;not null;index"`
	CourierID    *uuid.UUID     `gorm:"type:uuid;index"`
	OfferedAt    *time.Time     `gorm:"type:timestamptz"`
	Status       int            `gorm:"type:smallint;not null;index"`
	Version      int            `gorm:"not null;default:0"`
	CreatedAt    time.Time      `gorm:"type:timestamptz;not null;index"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Position keeps the items in the order
// the customer listed them.
type OrderItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	FoodID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int       `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	orderID := s.ID.Bytes()

	items := make([]OrderItemDTO, 0, len(s.Items))
	for i, item := range s.Items {
		items = append(items, OrderItemDTO{
			OrderID:  orderID,
			Position: i,
			FoodID:   item.FoodID().Bytes(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		CustomerID:   s.CustomerID.Bytes(),
		RestaurantID: s.RestaurantID.Bytes(),
		CourierID:    optionalUUID(s.CourierID),
		OfferedAt:    s.OfferedAt,
		Status:       int(s.Status),
		Version:      s.Version,
		CreatedAt:    s.CreatedAt,
		Items:        items,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder, which rejects rows whose
// courier binding contradicts the status.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		foodID, foodErr := kernel.UUIDFromBytes(itemDTO.FoodID[:])
		if foodErr != nil {
			return nil, foodErr
		}
		item, itemErr := order.NewItem(foodID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:           id,
		CreatedAt:    dto.CreatedAt,
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		CourierID:    courierID,
		OfferedAt:    dto.OfferedAt,
		Items:        items,
		Status:       order.Status(dto.Status),
		Version:      dto.Version,
	})
}
