package services

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// ShuffleFunc permutes n elements through swap, with the contract of rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// CourierDispatcher is a domain service that decides in which order idle
// couriers are tried for a DELIVERER_PENDING order.
//
// Selection is uniformly random: every idle courier is equally likely to be
// tried first. There is no proximity, load or fairness weighting.
//
// The dispatcher only ranks candidates. Claiming one of them (IDLE to
// ON_DECISION) is a conditional write performed by the caller, which moves on
// to the next candidate when the write loses a race.
//
// Example usage:
//
//	dispatcher := services.NewCourierDispatcher()
//	candidates, err := dispatcher.Candidates(o, idleCouriers, rejecterID)
//	if errors.Is(err, errs.ErrNoAvailableCourier) {
//	    // order stays DELIVERER_PENDING and unbound
//	}
type CourierDispatcher struct {
	shuffle ShuffleFunc
}

// NewCourierDispatcher creates a dispatcher backed by math/rand/v2.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{shuffle: rand.Shuffle}
}

// NewCourierDispatcherWithShuffle creates a dispatcher with a custom permutation,
// typically a deterministic one in tests.
func NewCourierDispatcherWithShuffle(shuffle ShuffleFunc) CourierDispatcher {
	return CourierDispatcher{shuffle: shuffle}
}

// Candidates returns the idle couriers that may be offered o, in the order they
// should be tried. Couriers listed in exclude, and couriers that are not IDLE in
// the given snapshot, are skipped. An empty result is reported as
// ErrNoAvailableCourier.
func (d CourierDispatcher) Candidates(o *order.Order, idle []*courier.Courier, exclude ...kernel.UUID) ([]*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.DelivererPending || o.Courier() != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order",
			fmt.Errorf("order %s is not waiting for a courier", o.ID()),
		)
	}

	candidates := make([]*courier.Courier, 0, len(idle))
	for _, c := range idle {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.Availability() != courier.Idle {
			continue
		}
		if slices.ContainsFunc(exclude, c.ID().IsEqual) {
			continue
		}
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("order %s: %w", o.ID(), errs.ErrNoAvailableCourier)
	}

	shuffle := d.shuffle
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return candidates, nil
}
