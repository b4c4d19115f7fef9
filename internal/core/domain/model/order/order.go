package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering domain. It ties a customer and a
// restaurant together, carries the ordered items, and tracks which courier (if
// any) the order is currently offered to or delivered by.
//
// Order follows these invariants:
//   - Must have valid order, customer and restaurant identifiers and at least one item
//   - Status changes go through ValidateTransition for the acting role
//   - A courier can only be bound while the order is DELIVERER_PENDING
//   - Can only be created through NewOrder or RestoreOrder
//
// Order is not safe for concurrent use; each unit of work loads its own copy.
type Order struct {
	id           kernel.UUID
	createdAt    time.Time
	customerID   kernel.UUID
	restaurantID kernel.UUID

	// courierID is the courier the order is offered to or delivered by (nil if unbound)
	courierID *kernel.UUID

	// offeredAt is when the current courier offer was made (nil if never offered)
	offeredAt *time.Time

	items  []Item
	status Status

	// version is the optimistic lock counter maintained by repositories
	version int

	events        []Event
	isConstructed bool
}

// NewOrder creates an order in RESTAURANT_PENDING with no courier bound.
//
// Items are expected to be validated against the restaurant menu beforehand
// (see services.MenuValidator); NewOrder only checks that there is at least one.
//
// Example:
//
//	item, _ := order.NewItem(pizzaID, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, []order.Item{item}, time.Now())
func NewOrder(id, customerID, restaurantID kernel.UUID, items []Item, createdAt time.Time) (*Order, error) {
	order := &Order{
		status:        RestaurantPending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customerID),
		order.setRestaurant(restaurantID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Snapshot is the flat state of an order used by persistence adapters to
// rebuild the aggregate.
type Snapshot struct {
	ID           kernel.UUID
	CreatedAt    time.Time
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	CourierID    *kernel.UUID
	OfferedAt    *time.Time
	Items        []Item
	Status       Status
	Version      int
}

// RestoreOrder rebuilds an order from persisted state, checking that the
// courier binding is consistent with the status.
func RestoreOrder(s Snapshot) (*Order, error) {
	order := &Order{
		createdAt:     s.CreatedAt.UTC(),
		version:       s.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(s.ID),
		order.setCustomer(s.CustomerID),
		order.setRestaurant(s.RestaurantID),
		order.setItems(s.Items),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if s.CourierID != nil {
		if err := s.CourierID.Validate(); err != nil {
			return nil, err
		}
		if s.Status == RestaurantPending || s.Status == RestaurantAccept {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"courier",
				fmt.Errorf("%s order cannot have a courier", s.Status),
			)
		}
		courierID := *s.CourierID
		order.courierID = &courierID
	}
	if s.OfferedAt != nil {
		offeredAt := s.OfferedAt.UTC()
		order.offeredAt = &offeredAt
	}

	order.status = s.Status
	return order, nil
}

// Snapshot returns a copy of the order state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:           o.id,
		CreatedAt:    o.createdAt,
		CustomerID:   o.customerID,
		RestaurantID: o.restaurantID,
		CourierID:    o.Courier(),
		OfferedAt:    o.OfferedAt(),
		Items:        o.Items(),
		Status:       o.status,
		Version:      o.version,
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Customer() kernel.UUID {
	return o.customerID
}

func (o *Order) Restaurant() kernel.UUID {
	return o.restaurantID
}

// Courier returns the bound courier's ID, or nil if no courier is bound.
func (o *Order) Courier() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// OfferedAt returns when the current courier offer was made, or nil.
func (o *Order) OfferedAt() *time.Time {
	if o.offeredAt == nil {
		return nil
	}
	t := *o.offeredAt
	return &t
}

// Items returns a copy of the ordered items.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Status() Status {
	return o.status
}

// Version is the optimistic lock counter of the persisted row this order was loaded from.
func (o *Order) Version() int {
	return o.version
}

// IncrementVersion is called by repositories after a successful conditional update.
func (o *Order) IncrementVersion() {
	o.version++
}

// IsBoundTo reports whether the order is bound to the given courier.
func (o *Order) IsBoundTo(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

// CheckOwner returns a NotOwnerError unless actorID is the order's customer,
// restaurant, or bound courier, depending on role.
func (o *Order) CheckOwner(role kernel.Role, actorID kernel.UUID) error {
	var owned bool
	switch role {
	case kernel.RoleCustomer:
		owned = o.customerID.IsEqual(actorID)
	case kernel.RoleRestaurant:
		owned = o.restaurantID.IsEqual(actorID)
	case kernel.RoleCourier:
		owned = o.IsBoundTo(actorID)
	}

	if !owned {
		return errs.NewNotOwnerError(role.String(), actorID, o.id)
	}
	return nil
}

// ChangeStatus moves the order to the requested status on behalf of role and
// records an EventStatusChanged. Courier binding is left untouched; dispatch
// changes it through OfferTo and Unbind, which record their own events.
func (o *Order) ChangeStatus(role kernel.Role, to Status, now time.Time) error {
	if err := ValidateTransition(role, o.status, to); err != nil {
		return err
	}

	from := o.status
	o.status = to
	o.record(EventStatusChanged, role.String(), from, now)
	return nil
}

// OfferTo binds the order to a courier that has just been put ON_DECISION and
// records an EventCourierOffered naming that courier.
// The order must be DELIVERER_PENDING and unbound.
//
// Example:
//
//	if err := c.Offer(); err != nil {
//	    return err
//	}
//	if err := o.OfferTo(c.ID(), time.Now()); err != nil {
//	    return err
//	}
//	// persist both aggregates in the same unit of work
func (o *Order) OfferTo(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status != DelivererPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot be offered to a courier", o.status),
		)
	}
	if o.courierID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier",
			fmt.Errorf("order is already offered to courier %s", o.courierID),
		)
	}

	offeredAt := now.UTC()
	o.courierID = &courierID
	o.offeredAt = &offeredAt
	o.record(EventCourierOffered, "", o.status, now)
	return nil
}

// Unbind clears the courier binding of a DELIVERER_PENDING order after the
// courier rejected the offer or let it expire. An EventCourierReleased naming
// the released courier is recorded; unbinding an unbound order records nothing.
func (o *Order) Unbind(now time.Time) error {
	if o.status != DelivererPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot be unbound from its courier", o.status),
		)
	}
	if o.courierID == nil {
		return nil
	}

	o.record(EventCourierReleased, "", o.status, now)
	o.courierID = nil
	o.offeredAt = nil
	return nil
}

// OfferExpired reports whether the order has been waiting on its courier's
// decision for longer than ttl. A non-positive ttl disables expiry.
func (o *Order) OfferExpired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 || o.status != DelivererPending || o.courierID == nil || o.offeredAt == nil {
		return false
	}
	return now.Sub(*o.offeredAt) >= ttl
}

// Events returns the events recorded since the last ClearEvents, oldest first.
func (o *Order) Events() []Event {
	return slices.Clone(o.events)
}

// record appends an event describing the current binding.
func (o *Order) record(eventType EventType, actor string, from Status, now time.Time) {
	o.events = append(o.events, Event{
		Type:         eventType,
		OrderID:      o.id,
		CustomerID:   o.customerID,
		RestaurantID: o.restaurantID,
		CourierID:    o.Courier(),
		Actor:        actor,
		From:         from,
		To:           o.status,
		OccurredAt:   now.UTC(),
	})
}

func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurant(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.quantity <= 0 || item.foodID.IsZero() {
			return errs.NewInvalidItemError(item.foodID, "must be created via NewItem")
		}
	}
	o.items = slices.Clone(items)
	return nil
}
