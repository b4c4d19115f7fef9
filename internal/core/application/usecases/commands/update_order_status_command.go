package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusAsRestaurantCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusAsRestaurantCommand must be created via NewUpdateOrderStatusAsRestaurantCommand constructor",
	)
	ErrUpdateOrderStatusAsCourierCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusAsCourierCommand must be created via NewUpdateOrderStatusAsCourierCommand constructor",
	)
)

// statusChange holds what both update commands share: who acts, on which
// order, the requested status and an optional expected prior status.
type statusChange struct {
	actorID  kernel.UUID
	orderID  kernel.UUID
	status   order.Status
	expected *order.Status

	guard guard.ConstructorGuard
}

func newStatusChange(actorID, orderID kernel.UUID, status order.Status) (statusChange, error) {
	var actorErr error
	if err := actorID.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	if err := errors.Join(actorErr, orderID.Validate(), status.Validate()); err != nil {
		return statusChange{}, err
	}

	return statusChange{
		actorID: actorID,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c statusChange) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested new status.
func (c statusChange) Status() order.Status {
	return c.status
}

// ExpectedStatus returns the prior status the caller based its request on, if given.
func (c statusChange) ExpectedStatus() (order.Status, bool) {
	if c.expected == nil {
		return order.Unknown, false
	}
	return *c.expected, true
}

// UpdateOrderStatusAsRestaurantCommand asks to move an order on behalf of its restaurant.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusAsRestaurantCommand(restaurantID, orderID, order.DelivererPending)
//	if err != nil {
//	    return err
//	}
//	cmd = cmd.WithExpectedStatus(order.RestaurantAccept)
type UpdateOrderStatusAsRestaurantCommand struct {
	statusChange
}

func NewUpdateOrderStatusAsRestaurantCommand(
	restaurantID, orderID kernel.UUID,
	status order.Status,
) (UpdateOrderStatusAsRestaurantCommand, error) {
	change, err := newStatusChange(restaurantID, orderID, status)
	if err != nil {
		return UpdateOrderStatusAsRestaurantCommand{}, err
	}
	return UpdateOrderStatusAsRestaurantCommand{statusChange: change}, nil
}

// WithExpectedStatus makes the update fail with a conflict unless the order
// is still in prior.
func (c UpdateOrderStatusAsRestaurantCommand) WithExpectedStatus(prior order.Status) UpdateOrderStatusAsRestaurantCommand {
	c.expected = &prior
	return c
}

func (c UpdateOrderStatusAsRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusAsRestaurantCommandIsNotConstructed)
}

func (c UpdateOrderStatusAsRestaurantCommand) RestaurantID() kernel.UUID {
	return c.actorID
}

// UpdateOrderStatusAsCourierCommand asks to move an order on behalf of the
// courier it is bound to. Requesting DELIVERER_PENDING on a DELIVERER_PENDING
// order is a rejection of the offer.
type UpdateOrderStatusAsCourierCommand struct {
	statusChange
}

func NewUpdateOrderStatusAsCourierCommand(
	courierID, orderID kernel.UUID,
	status order.Status,
) (UpdateOrderStatusAsCourierCommand, error) {
	change, err := newStatusChange(courierID, orderID, status)
	if err != nil {
		return UpdateOrderStatusAsCourierCommand{}, err
	}
	return UpdateOrderStatusAsCourierCommand{statusChange: change}, nil
}

// WithExpectedStatus makes the update fail with a conflict unless the order
// is still in prior.
func (c UpdateOrderStatusAsCourierCommand) WithExpectedStatus(prior order.Status) UpdateOrderStatusAsCourierCommand {
	c.expected = &prior
	return c
}

func (c UpdateOrderStatusAsCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusAsCourierCommandIsNotConstructed)
}

func (c UpdateOrderStatusAsCourierCommand) CourierID() kernel.UUID {
	return c.actorID
}
