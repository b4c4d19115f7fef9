package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetActorQueryIsNotConstructed = errors.New(
	"GetActorQuery must be created via NewGetActorQuery constructor",
)

// GetActorQuery looks up a registered customer, restaurant or courier.
// Sign-in uses it to refuse tokens for actors that do not exist.
type GetActorQuery struct {
	role    kernel.Role
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetActorQuery(role kernel.Role, actorID kernel.UUID) (GetActorQuery, error) {
	var actorErr error
	if err := actorID.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := errors.Join(role.Validate(), actorErr); err != nil {
		return GetActorQuery{}, err
	}

	return GetActorQuery{role: role, actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActorQuery) Validate() error {
	return q.guard.Validate(ErrGetActorQueryIsNotConstructed)
}

type ActorResponse struct {
	Role kernel.Role
	ID   kernel.UUID
	Name string
}

type GetActorQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetActorQueryHandler(uowFactory ports.UnitOfWorkFactory) GetActorQueryHandler {
	return GetActorQueryHandler{uowFactory: uowFactory}
}

func (h GetActorQueryHandler) Handle(ctx context.Context, query GetActorQuery) (ActorResponse, error) {
	if err := query.Validate(); err != nil {
		return ActorResponse{}, err
	}

	uow := h.uowFactory.Create()
	response := ActorResponse{Role: query.role, ID: query.actorID}

	switch query.role {
	case kernel.RoleCustomer:
		c, err := uow.CustomerRepository().Get(ctx, query.actorID)
		if err != nil {
			return ActorResponse{}, err
		}
		response.Name = c.Name()
	case kernel.RoleRestaurant:
		r, err := uow.RestaurantRepository().Get(ctx, query.actorID)
		if err != nil {
			return ActorResponse{}, err
		}
		response.Name = r.Name()
	case kernel.RoleCourier:
		c, err := uow.CourierRepository().Get(ctx, query.actorID)
		if err != nil {
			return ActorResponse{}, err
		}
		response.Name = c.Name()
	default:
		return ActorResponse{}, errs.NewValueIsInvalidError("role")
	}

	return response, nil
}
