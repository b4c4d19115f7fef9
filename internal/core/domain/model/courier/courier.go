package courier

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier with an empty name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrCourierIsNotConstructed is returned when a Courier instance was not created
	// through NewCourier or RestoreCourier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier is the aggregate root for a delivery courier. Its only mutable state
// is Availability; every change is a single step of the availability graph and
// is persisted by the repository as a conditional update on the prior value.
//
// Availability graph:
//
//	IDLE --Offer--> ON_DECISION --Accept--> BUSY
//	 ^                   |                   |
//	 +------Decline------+                   |
//	 +---------------Release-----------------+
//
// A transition attempted from any other state fails with errs.ErrConflict and
// leaves the courier unchanged.
//
// Example usage:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
//	if err != nil {
//	    return err
//	}
//	prior := c.Availability() // IDLE
//	if err = c.Offer(); err != nil {
//	    return err
//	}
//	// Persist only if nobody moved the courier since it was read.
//	err = repo.UpdateAvailability(ctx, c, prior)
type Courier struct {
	id           kernel.UUID
	name         string
	availability Availability
	guard        guard.ConstructorGuard
}

// NewCourier creates an IDLE courier. The name is trimmed and must not be
// empty; the id must be constructed. Every violation is reported together
// through errors.Join.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Name(), c.Availability()) // Alice IDLE
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	return RestoreCourier(id, name, Idle)
}

// RestoreCourier rebuilds a courier from persisted state, including the
// availability it was stored with. It applies the NewCourier validation and
// additionally rejects an unknown Availability.
//
// Example:
//
//	availability, err := courier.ParseAvailability(row.Availability)
//	if err != nil {
//	    return nil, err
//	}
//	return courier.RestoreCourier(id, row.Name, availability)
func RestoreCourier(id kernel.UUID, name string, availability Availability) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		availability.Validate(),
	); err != nil {
		return nil, err
	}

	courier.availability = availability
	return courier, nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Availability() Availability {
	return c.availability
}

// Offer puts an IDLE courier ON_DECISION. The order side of the offer is
// order.OfferTo; both are persisted in the same unit of work.
//
// Example:
//
//	if err := c.Offer(); err != nil {
//	    continue // someone else claimed this courier
//	}
//	if err := repo.UpdateAvailability(ctx, c, courier.Idle); errors.Is(err, errs.ErrConflict) {
//	    continue
//	}
func (c *Courier) Offer() error {
	return c.move(Idle, OnDecision)
}

// Accept turns the pending decision into a delivery: ON_DECISION to BUSY.
func (c *Courier) Accept() error {
	return c.move(OnDecision, Busy)
}

// Decline returns a courier that rejected, or let expire, its offer to IDLE.
// It is also used when the restaurant cancels an order that was offered.
//
// Example:
//
//	if err := c.Decline(); err != nil {
//	    return err
//	}
//	if err := repo.UpdateAvailability(ctx, c, courier.OnDecision); err != nil {
//	    return err
//	}
func (c *Courier) Decline() error {
	return c.move(OnDecision, Idle)
}

// Release returns a BUSY courier to IDLE once the delivery is done or cancelled.
func (c *Courier) Release() error {
	return c.move(Busy, Idle)
}

// move reports a ConflictError when the courier is not in the expected state:
// the caller acted on a stale view of the courier.
func (c *Courier) move(from, to Availability) error {
	if c.availability != from {
		return errs.NewConflictError("courier", c.id)
	}
	c.availability = to
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
