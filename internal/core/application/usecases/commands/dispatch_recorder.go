package commands

import "context"

// Dispatch triggers passed to a DispatchRecorder.
const (
	TriggerRestaurant = "restaurant"
	TriggerRejection  = "rejection"
	TriggerAssignment = "assignment"
	TriggerExpiry     = "expiry"
)

// DispatchRecorder observes committed dispatch outcomes. trigger names the
// path that tried to find a courier.
type DispatchRecorder interface {
	OfferMade(ctx context.Context, trigger string)
	NoCourierAvailable(ctx context.Context, trigger string)
}

type nopRecorder struct{}

func (nopRecorder) OfferMade(context.Context, string)          {}
func (nopRecorder) NoCourierAvailable(context.Context, string) {}

// recordDispatch reports the outcome of one offer attempt. offered is false
// when no courier could take the order.
func recordDispatch(ctx context.Context, r DispatchRecorder, trigger string, offered bool) {
	if offered {
		r.OfferMade(ctx, trigger)
		return
	}
	r.NoCourierAvailable(ctx, trigger)
}
