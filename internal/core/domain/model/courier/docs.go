// Package courier provides the Courier aggregate and its dispatch availability.
//
// Key business rules:
//   - Couriers must have a valid unique identifier and a name
//   - New couriers are IDLE
//   - Availability moves IDLE -> ON_DECISION -> BUSY -> IDLE, or ON_DECISION -> IDLE on rejection
//   - A courier is ON_DECISION for at most one order and BUSY for at most one order;
//     repositories enforce this with conditional updates on the prior availability
package courier
