package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// ExpireOffersCommandHandler treats an offer left ON_DECISION for longer than
// the TTL as a rejection by that courier: the courier goes back to IDLE and the
// order is re-offered to someone else.
type ExpireOffersCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.CourierDispatcher
	recorder   DispatchRecorder
	now        func() time.Time
}

func NewExpireOffersCommandHandler(uowFactory UoWFactory, dispatcher services.CourierDispatcher) ExpireOffersCommandHandler {
	return ExpireOffersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		recorder:   nopRecorder{},
		now:        time.Now,
	}
}

func (h ExpireOffersCommandHandler) WithRecorder(r DispatchRecorder) ExpireOffersCommandHandler {
	if r != nil {
		h.recorder = r
	}
	return h
}

// Handle returns how many offers were withdrawn. Each expired offer is handled
// in its own unit of work; an offer that changed concurrently (the courier
// decided in the meantime) is skipped.
func (h ExpireOffersCommandHandler) Handle(ctx context.Context, cmd ExpireOffersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.now()
	pending, err := h.uowFactory.Create().OrderRepository().List(ctx, order.Filter{
		Statuses: []order.Status{order.DelivererPending},
	})
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, o := range pending {
		if !o.OfferExpired(now, cmd.TTL()) {
			continue
		}

		err = h.expire(ctx, o.ID(), *o.Courier(), cmd.TTL(), now)
		if errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrNotOwner) {
			continue
		}
		if err != nil {
			return expired, err
		}
		expired++
	}

	return expired, nil
}

func (h ExpireOffersCommandHandler) expire(ctx context.Context, orderID, courierID kernel.UUID, ttl time.Duration, now time.Time) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if err = o.CheckOwner(kernel.RoleCourier, courierID); err != nil {
		return err
	}
	if !o.OfferExpired(now, ttl) {
		return errs.NewConflictError("order", orderID)
	}

	c, err := courierRepo.Get(ctx, courierID)
	if err != nil {
		return err
	}
	reoffered, err := withdrawOffer(ctx, courierRepo, h.dispatcher, o, c, now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o, order.DelivererPending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordDispatch(ctx, h.recorder, TriggerExpiry, reoffered)
	return nil
}
