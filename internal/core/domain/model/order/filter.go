package order

import (
	"slices"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Filter selects orders for OrderRepository.List. Zero fields do not
// restrict the result.
type Filter struct {
	Statuses     []Status
	CustomerID   *kernel.UUID
	RestaurantID *kernel.UUID
	CourierID    *kernel.UUID

	// Unbound keeps only orders with no courier bound.
	Unbound bool
}

// Matches reports whether o satisfies every set criterion of f.
func (f Filter) Matches(o *Order) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, o.status) {
		return false
	}
	if f.CustomerID != nil && !o.customerID.IsEqual(*f.CustomerID) {
		return false
	}
	if f.RestaurantID != nil && !o.restaurantID.IsEqual(*f.RestaurantID) {
		return false
	}
	if f.CourierID != nil && !o.IsBoundTo(*f.CourierID) {
		return false
	}
	if f.Unbound && o.courierID != nil {
		return false
	}
	return true
}
