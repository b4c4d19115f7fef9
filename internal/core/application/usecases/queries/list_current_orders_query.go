package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrListCurrentOrdersQueryIsNotConstructed = errors.New(
	"ListCurrentOrdersQuery must be created via NewListCurrentOrdersQuery constructor",
)

// ListCurrentOrdersQuery lists the open orders an actor is involved in:
//   - customer: RESTAURANT_PENDING, RESTAURANT_ACCEPT, DELIVERER_PENDING, DELIVERING
//   - restaurant: RESTAURANT_PENDING, RESTAURANT_ACCEPT, DELIVERER_PENDING
//   - courier: DELIVERING
//
// Example:
//
//	query, err := NewListCurrentOrdersQuery(kernel.RoleCustomer, customerID)
//	orders, err := handler.Handle(ctx, query)
type ListCurrentOrdersQuery struct {
	role    kernel.Role
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListCurrentOrdersQuery(role kernel.Role, actorID kernel.UUID) (ListCurrentOrdersQuery, error) {
	var actorErr error
	if err := actorID.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := errors.Join(role.Validate(), actorErr); err != nil {
		return ListCurrentOrdersQuery{}, err
	}

	return ListCurrentOrdersQuery{
		role:    role,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListCurrentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCurrentOrdersQueryIsNotConstructed)
}

func (q ListCurrentOrdersQuery) Role() kernel.Role {
	return q.role
}

func (q ListCurrentOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}
