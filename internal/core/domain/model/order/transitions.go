package order

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

type edge struct {
	from Status
	to   Status
}

// Edge sets per initiating role. Customers have none: they only read.
var (
	restaurantEdges = map[edge]struct{}{
		{RestaurantPending, RestaurantAccept}: {},
		{RestaurantAccept, DelivererPending}:  {},
		{RestaurantAccept, Done}:              {},
		{RestaurantPending, Cancel}:           {},
		{RestaurantAccept, Cancel}:            {},
		{DelivererPending, Cancel}:            {},
	}

	courierEdges = map[edge]struct{}{
		{DelivererPending, DelivererPending}: {},
		{DelivererPending, Delivering}:       {},
		{Delivering, Done}:                   {},
		{Delivering, Cancel}:                 {},
	}
)

// ValidateTransition reports whether role may move an order from one status to
// another. Any pair outside the role's edge set yields an InvalidTransitionError.
func ValidateTransition(role kernel.Role, from, to Status) error {
	var edges map[edge]struct{}
	switch role {
	case kernel.RoleRestaurant:
		edges = restaurantEdges
	case kernel.RoleCourier:
		edges = courierEdges
	}

	if _, ok := edges[edge{from: from, to: to}]; !ok {
		return errs.NewInvalidTransitionError(role.String(), from.String(), to.String())
	}
	return nil
}

// CurrentStatuses returns the open statuses a role sees as "current" orders.
// Couriers have no generic current set: they use the suggested order and the
// current delivery instead, so nil is returned for them.
func CurrentStatuses(role kernel.Role) []Status {
	switch role {
	case kernel.RoleCustomer:
		return []Status{RestaurantPending, RestaurantAccept, DelivererPending, Delivering}
	case kernel.RoleRestaurant:
		return []Status{RestaurantPending, RestaurantAccept, DelivererPending}
	default:
		return nil
	}
}
