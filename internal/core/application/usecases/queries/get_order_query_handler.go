package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// GetOrderQueryHandler returns a single order. A courier can read an order
// only while it is bound to them, including the order they were offered.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := checkActorExists(ctx, uow, query.Role(), query.ActorID()); err != nil {
		return OrderResponse{}, err
	}

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	if err = o.CheckOwner(query.Role(), query.ActorID()); err != nil {
		return OrderResponse{}, err
	}

	return toOrderResponse(o), nil
}
