package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
)

// UpdateOrderStatusAsCourierCommandHandler applies courier decisions:
//   - DELIVERER_PENDING -> DELIVERER_PENDING rejects the offer; the courier goes
//     back to IDLE and the order is re-offered to another idle courier, if any
//   - DELIVERER_PENDING -> DELIVERING accepts it; the courier becomes BUSY
//   - DELIVERING -> DONE or CANCEL ends the delivery; the courier becomes IDLE
type UpdateOrderStatusAsCourierCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.CourierDispatcher
	recorder   DispatchRecorder
	now        func() time.Time
}

func NewUpdateOrderStatusAsCourierCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.CourierDispatcher,
) UpdateOrderStatusAsCourierCommandHandler {
	return UpdateOrderStatusAsCourierCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		recorder:   nopRecorder{},
		now:        time.Now,
	}
}

func (h UpdateOrderStatusAsCourierCommandHandler) WithRecorder(r DispatchRecorder) UpdateOrderStatusAsCourierCommandHandler {
	if r != nil {
		h.recorder = r
	}
	return h
}

func (h UpdateOrderStatusAsCourierCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusAsCourierCommand) error {
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
	if err = o.CheckOwner(kernel.RoleCourier, cmd.CourierID()); err != nil {
		return err
	}
	if err = checkExpectedStatus(o, cmd.expected); err != nil {
		return err
	}

	now := h.now()
	prior := o.Status()
	if err = o.ChangeStatus(kernel.RoleCourier, cmd.Status(), now); err != nil {
		return err
	}

	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	var reoffered bool
	switch cmd.Status() {
	case order.DelivererPending:
		reoffered, err = withdrawOffer(ctx, courierRepo, h.dispatcher, o, c, now)
	case order.Delivering:
		if err = c.Accept(); err == nil {
			err = courierRepo.UpdateAvailability(ctx, c, courier.OnDecision)
		}
	case order.Done, order.Cancel:
		if err = c.Release(); err == nil {
			err = courierRepo.UpdateAvailability(ctx, c, courier.Busy)
		}
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o, prior); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Status() == order.DelivererPending {
		recordDispatch(ctx, h.recorder, TriggerRejection, reoffered)
	}
	return nil
}
