// Package errs provides standardized error types for the food delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - NotOwnerError: For when an actor touches an order that is not theirs
//   - InvalidTransitionError: For when a role may not perform a status change
//   - InvalidItemError: For when an order item cannot be ordered
//   - ConflictError: For when a conditional update lost a concurrent race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Kind and KindOf fold every error into the closed taxonomy reported to callers,
// so transport code handles a fixed set of cases.
package errs
