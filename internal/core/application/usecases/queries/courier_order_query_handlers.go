package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// GetSuggestedOrderQueryHandler returns the DELIVERER_PENDING order bound to
// a courier that is ON_DECISION. Any other courier has no suggestion and gets
// errs.ErrObjectNotFound.
type GetSuggestedOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetSuggestedOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetSuggestedOrderQueryHandler {
	return GetSuggestedOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetSuggestedOrderQueryHandler) Handle(ctx context.Context, query GetSuggestedOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	c, err := uow.CourierRepository().Get(ctx, query.CourierID())
	if err != nil {
		return OrderResponse{}, err
	}
	if c.Availability() != courier.OnDecision {
		return OrderResponse{}, errs.NewObjectNotFoundError("suggested order", query.CourierID())
	}

	return firstBoundOrder(ctx, uow, "suggested order", query.CourierID(), order.DelivererPending)
}

// GetCurrentDeliveryQueryHandler returns the order a courier is delivering,
// or errs.ErrObjectNotFound when the courier is not delivering anything.
type GetCurrentDeliveryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetCurrentDeliveryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCurrentDeliveryQueryHandler {
	return GetCurrentDeliveryQueryHandler{uowFactory: uowFactory}
}

func (h GetCurrentDeliveryQueryHandler) Handle(ctx context.Context, query GetCurrentDeliveryQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if _, err := uow.CourierRepository().Get(ctx, query.CourierID()); err != nil {
		return OrderResponse{}, err
	}

	return firstBoundOrder(ctx, uow, "current delivery", query.CourierID(), order.Delivering)
}

func firstBoundOrder(
	ctx context.Context,
	uow ports.UnitOfWork,
	what string,
	courierID kernel.UUID,
	status order.Status,
) (OrderResponse, error) {
	orders, err := uow.OrderRepository().List(ctx, order.Filter{
		Statuses:  []order.Status{status},
		CourierID: &courierID,
	})
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError(what, courierID)
	}

	return toOrderResponse(orders[0]), nil
}
