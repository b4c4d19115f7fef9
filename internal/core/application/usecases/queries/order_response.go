// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models for specific use cases and never modify state.
package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// OrderResponse is the read model of an order shared by every order query.
type OrderResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	CourierID    *kernel.UUID
	Items        []ItemResponse
	Status       order.Status
	CreatedAt    time.Time
}

type ItemResponse struct {
	FoodID   kernel.UUID
	Quantity int
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
			FoodID:   item.FoodID(),
			Quantity: item.Quantity(),
		})
	}

	return OrderResponse{
		ID:           o.ID(),
		CustomerID:   o.Customer(),
		RestaurantID: o.Restaurant(),
		CourierID:    o.Courier(),
		Items:        items,
		Status:       o.Status(),
		CreatedAt:    o.CreatedAt(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

// checkActorExists returns errs.ErrObjectNotFound when no actor with the
// given role and ID is registered.
func checkActorExists(ctx context.Context, uow ports.UnitOfWork, role kernel.Role, id kernel.UUID) error {
	var err error
	switch role {
	case kernel.RoleCustomer:
		_, err = uow.CustomerRepository().Get(ctx, id)
	case kernel.RoleRestaurant:
		_, err = uow.RestaurantRepository().Get(ctx, id)
	case kernel.RoleCourier:
		_, err = uow.CourierRepository().Get(ctx, id)
	default:
		err = errs.NewValueIsInvalidError("role")
	}
	return err
}
