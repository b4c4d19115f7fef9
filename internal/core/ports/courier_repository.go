// Package ports defines the interfaces the application layer needs from the
// outside world: repositories, the unit of work, the session store and the
// event publisher.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// ListByAvailability returns every courier in the given availability.
	ListByAvailability(ctx context.Context, availability courier.Availability) ([]*courier.Courier, error)

	// UpdateAvailability stores courier.Availability() only if the stored value is
	// still expected. This compare-and-set is what keeps two dispatches from
	// claiming the same courier: the loser gets errs.ErrConflict.
	//
	// Example:
	//   prior := c.Availability()
	//   if err := c.Offer(); err != nil { ... }
	//   if err := repo.UpdateAvailability(ctx, c, prior); errors.Is(err, errs.ErrConflict) {
	//       // someone else claimed the courier, try the next one
	//   }
	UpdateAvailability(ctx context.Context, courier *courier.Courier, expected courier.Availability) error
}
