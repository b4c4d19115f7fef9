// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - CourierDispatcher: offers DELIVERER_PENDING orders to idle couriers in random order and releases them on reject, delivery or cancellation
//   - MenuValidator: checks order items against a restaurant menu
package services
