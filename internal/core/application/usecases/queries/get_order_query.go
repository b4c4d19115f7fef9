package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order on behalf of an actor bound to it.
type GetOrderQuery struct {
	role    kernel.Role
	actorID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(role kernel.Role, actorID, orderID kernel.UUID) (GetOrderQuery, error) {
	var actorErr, orderErr error
	if err := actorID.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := orderID.Validate(); err != nil {
		orderErr = errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	if err := errors.Join(role.Validate(), actorErr, orderErr); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		role:    role,
		actorID: actorID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Role() kernel.Role {
	return q.role
}

func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
