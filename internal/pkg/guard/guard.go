// Package guard provides ConstructorGuard, a marker that lets value objects,
// commands and queries detect that they were built as a zero value instead
// of through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created through a
// constructor. The zero value reports itself as not constructed.
//
// Example usage:
//
//	var ErrOfferNotConstructed = errors.New("Offer must be created via NewOffer")
//
//	type Offer struct {
//	    courierID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (o Offer) Validate() error {
//	    return o.guard.Validate(ErrOfferNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
