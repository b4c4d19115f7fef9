package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

var ErrNoOrderFound = errors.New("no order found")

// AssignCourierCommandHandler binds waiting orders to couriers that became
// idle after the order reached DELIVERER_PENDING.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory, services.NewCourierDispatcher())
//	err := handler.Handle(ctx, NewAssignCourierCommand())
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No unbound orders")
//	case errors.Is(err, errs.ErrNoAvailableCourier):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Courier assigned successfully")
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.CourierDispatcher
	recorder   DispatchRecorder
	now        func() time.Time
}

func NewAssignCourierCommandHandler(uowFactory UoWFactory, dispatcher services.CourierDispatcher) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		recorder:   nopRecorder{},
		now:        time.Now,
	}
}

// WithRecorder returns a copy of the handler reporting to r.
func (h AssignCourierCommandHandler) WithRecorder(r DispatchRecorder) AssignCourierCommandHandler {
	if r != nil {
		h.recorder = r
	}
	return h
}

// Handle offers the oldest unbound DELIVERER_PENDING order to an idle courier.
// Returns ErrNoOrderFound when no order is waiting and errs.ErrNoAvailableCourier
// when nobody can take it.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	waiting, err := ordersRepo.List(ctx, order.Filter{
		Statuses: []order.Status{order.DelivererPending},
		Unbound:  true,
	})
	if err != nil {
		return err
	}
	if len(waiting) == 0 {
		return ErrNoOrderFound
	}

	o := waiting[0]
	if _, err = offerToCourier(ctx, courierRepo, h.dispatcher, o, h.now()); err != nil {
		if errors.Is(err, errs.ErrNoAvailableCourier) {
			recordDispatch(ctx, h.recorder, TriggerAssignment, false)
		}
		return err
	}

	if err = ordersRepo.Update(ctx, o, order.DelivererPending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordDispatch(ctx, h.recorder, TriggerAssignment, true)
	return nil
}
