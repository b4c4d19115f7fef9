package queries

import (
	"context"
	"errors"
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAllCouriersQueryIsNotConstructed = errors.New(
	"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
)

// GetAllCouriersQuery retrieves every courier with its current availability,
// for monitoring dispatch.
//
// Example:
//
//	couriers, err := NewGetAllCouriersQueryHandler(uowFactory).Handle(ctx, NewGetAllCouriersQuery())
//	for _, c := range couriers {
//	    fmt.Printf("%s is %s\n", c.Name, c.Availability)
//	}
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

type GetAllCouriersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Availability courier.Availability
}

type GetAllCouriersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetAllCouriersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{uowFactory: uowFactory}
}

// Handle returns the couriers sorted by name.
func (h GetAllCouriersQueryHandler) Handle(ctx context.Context, query GetAllCouriersQuery) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().CourierRepository()
	couriers := make([]GetAllCouriersQueryResponse, 0)
	for _, availability := range []courier.Availability{courier.Idle, courier.OnDecision, courier.Busy} {
		list, err := repo.ListByAvailability(ctx, availability)
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			couriers = append(couriers, GetAllCouriersQueryResponse{
				ID:           c.ID(),
				Name:         c.Name(),
				Availability: c.Availability(),
			})
		}
	}

	slices.SortStableFunc(couriers, func(a, b GetAllCouriersQueryResponse) int {
		return strings.Compare(a.Name, b.Name)
	})
	return couriers, nil
}
