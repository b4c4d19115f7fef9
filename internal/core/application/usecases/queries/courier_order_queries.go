package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetSuggestedOrderQueryIsNotConstructed = errors.New(
		"GetSuggestedOrderQuery must be created via NewGetSuggestedOrderQuery constructor",
	)
	ErrGetCurrentDeliveryQueryIsNotConstructed = errors.New(
		"GetCurrentDeliveryQuery must be created via NewGetCurrentDeliveryQuery constructor",
	)
)

func validateCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier", err)
	}
	return nil
}

// GetSuggestedOrderQuery reads the order a courier has been offered and has
// not decided on yet.
type GetSuggestedOrderQuery struct {
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetSuggestedOrderQuery(courierID kernel.UUID) (GetSuggestedOrderQuery, error) {
	if err := validateCourierID(courierID); err != nil {
		return GetSuggestedOrderQuery{}, err
	}
	return GetSuggestedOrderQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSuggestedOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetSuggestedOrderQueryIsNotConstructed)
}

func (q GetSuggestedOrderQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCurrentDeliveryQuery reads the order a courier is delivering.
type GetCurrentDeliveryQuery struct {
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetCurrentDeliveryQuery(courierID kernel.UUID) (GetCurrentDeliveryQuery, error) {
	if err := validateCourierID(courierID); err != nil {
		return GetCurrentDeliveryQuery{}, err
	}
	return GetCurrentDeliveryQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCurrentDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentDeliveryQueryIsNotConstructed)
}

func (q GetCurrentDeliveryQuery) CourierID() kernel.UUID {
	return q.courierID
}
