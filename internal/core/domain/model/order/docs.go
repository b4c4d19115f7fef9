// Package order provides the Order aggregate of the food delivery domain and
// the role-scoped state machine that governs it.
//
// The package includes:
//   - Order: the aggregate root holding customer, restaurant, optional courier binding and items
//   - Item: a food reference with a positive quantity
//   - Status: the six lifecycle states, DONE and CANCEL being terminal
//   - ValidateTransition: the restaurant and courier edge sets
//   - Event: recorded on every status change and every courier offer or release
//
// Key business rules:
//   - Orders start in RESTAURANT_PENDING with no courier bound
//   - A courier may be bound only while DELIVERER_PENDING, and stays bound afterwards
//   - Only the rejection flow (DELIVERER_PENDING to DELIVERER_PENDING) clears a binding
//   - Customers never change status
package order
