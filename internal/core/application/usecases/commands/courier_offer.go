package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// offerToCourier binds a DELIVERER_PENDING, unbound order to an idle courier.
//
// Candidates are tried in the dispatcher's random order. Each claim is a
// conditional IDLE -> ON_DECISION write; a candidate claimed concurrently by
// someone else is skipped. The order is bound in memory only and must be
// persisted by the caller in the same unit of work.
func offerToCourier(
	ctx context.Context,
	courierRepo ports.CourierRepository,
	dispatcher services.CourierDispatcher,
	o *order.Order,
	now time.Time,
	exclude ...kernel.UUID,
) (*courier.Courier, error) {
	idle, err := courierRepo.ListByAvailability(ctx, courier.Idle)
	if err != nil {
		return nil, err
	}

	candidates, err := dispatcher.Candidates(o, idle, exclude...)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if err = candidate.Offer(); err != nil {
			continue
		}

		err = courierRepo.UpdateAvailability(ctx, candidate, courier.Idle)
		if errors.Is(err, errs.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if err = o.OfferTo(candidate.ID(), now); err != nil {
			return nil, err
		}
		return candidate, nil
	}

	return nil, fmt.Errorf("order %s: every idle courier was taken: %w", o.ID(), errs.ErrNoAvailableCourier)
}

// withdrawOffer returns the courier the order is offered to back to IDLE,
// unbinds the order and re-offers it to anyone but that courier. Finding no
// other idle courier is not an error: the order simply stays unbound and
// reoffered is false.
func withdrawOffer(
	ctx context.Context,
	courierRepo ports.CourierRepository,
	dispatcher services.CourierDispatcher,
	o *order.Order,
	c *courier.Courier,
	now time.Time,
) (reoffered bool, err error) {
	if err = c.Decline(); err != nil {
		return false, err
	}
	if err = courierRepo.UpdateAvailability(ctx, c, courier.OnDecision); err != nil {
		return false, err
	}
	if err = o.Unbind(now); err != nil {
		return false, err
	}

	_, err = offerToCourier(ctx, courierRepo, dispatcher, o, now, c.ID())
	if errors.Is(err, errs.ErrNoAvailableCourier) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// checkExpectedStatus fails with a ConflictError when the caller acted on a
// status the order no longer has.
func checkExpectedStatus(o *order.Order, expected *order.Status) error {
	if expected != nil && *expected != o.Status() {
		return errs.NewConflictError("order", o.ID())
	}
	return nil
}
