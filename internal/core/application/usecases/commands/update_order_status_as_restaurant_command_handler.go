package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// UpdateOrderStatusAsRestaurantCommandHandler applies restaurant status changes.
//
// Moving an order to DELIVERER_PENDING offers it to a random idle courier. When
// no courier is idle the status change is still committed, the order is left
// unbound for the assignment job, and errs.ErrNoAvailableCourier is returned so
// the restaurant knows nobody has the order yet.
//
// Cancelling a DELIVERER_PENDING order returns the courier it was offered to,
// if any, to IDLE.
type UpdateOrderStatusAsRestaurantCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.CourierDispatcher
	recorder   DispatchRecorder
	now        func() time.Time
}

func NewUpdateOrderStatusAsRestaurantCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.CourierDispatcher,
) UpdateOrderStatusAsRestaurantCommandHandler {
	return UpdateOrderStatusAsRestaurantCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		recorder:   nopRecorder{},
		now:        time.Now,
	}
}

func (h UpdateOrderStatusAsRestaurantCommandHandler) WithRecorder(r DispatchRecorder) UpdateOrderStatusAsRestaurantCommandHandler {
	if r != nil {
		h.recorder = r
	}
	return h
}

func (h UpdateOrderStatusAsRestaurantCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusAsRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = o.CheckOwner(kernel.RoleRestaurant, cmd.RestaurantID()); err != nil {
		return err
	}
	if err = checkExpectedStatus(o, cmd.expected); err != nil {
		return err
	}

	now := h.now()
	prior := o.Status()
	if err = o.ChangeStatus(kernel.RoleRestaurant, cmd.Status(), now); err != nil {
		return err
	}

	var dispatchErr error
	switch {
	case cmd.Status() == order.DelivererPending:
		_, dispatchErr = offerToCourier(ctx, courierRepo, h.dispatcher, o, now)
		if dispatchErr != nil && !errors.Is(dispatchErr, errs.ErrNoAvailableCourier) {
			return dispatchErr
		}
	case cmd.Status() == order.Cancel && prior == order.DelivererPending && o.Courier() != nil:
		c, getErr := courierRepo.Get(ctx, *o.Courier())
		if getErr != nil {
			return getErr
		}
		if err = c.Decline(); err != nil {
			return err
		}
		if err = courierRepo.UpdateAvailability(ctx, c, courier.OnDecision); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o, prior); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Status() == order.DelivererPending {
		recordDispatch(ctx, h.recorder, TriggerRestaurant, dispatchErr == nil)
	}
	return dispatchErr
}
