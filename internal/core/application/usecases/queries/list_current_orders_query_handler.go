package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// ListCurrentOrdersQueryHandler returns the actor's open orders, oldest first.
type ListCurrentOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListCurrentOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListCurrentOrdersQueryHandler {
	return ListCurrentOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound when the actor is not registered.
func (h ListCurrentOrdersQueryHandler) Handle(ctx context.Context, query ListCurrentOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := checkActorExists(ctx, uow, query.Role(), query.ActorID()); err != nil {
		return nil, err
	}

	actorID := query.ActorID()
	filter := order.Filter{Statuses: order.CurrentStatuses(query.Role())}
	switch query.Role() {
	case kernel.RoleCustomer:
		filter.CustomerID = &actorID
	case kernel.RoleRestaurant:
		filter.RestaurantID = &actorID
	case kernel.RoleCourier:
		filter.Statuses = []order.Status{order.Delivering}
		filter.CourierID = &actorID
	}

	orders, err := uow.OrderRepository().List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toOrderResponses(orders), nil
}
