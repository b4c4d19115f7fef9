package errs

import "errors"

// Kind is the closed set of failure categories surfaced to callers of the
// order lifecycle handlers. Transport adapters switch over Kind instead of
// matching individual sentinels.
type Kind int

const (
	// KindStorageFailure covers every error not produced by this module,
	// typically I/O errors reported by the entity store. Such errors are
	// passed through unmodified.
	KindStorageFailure Kind = iota
	KindNotFound
	KindNotOwner
	KindInvalidTransition
	KindInvalidItem
	KindNoAvailableCourier
	KindConflict
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindStorageFailure:
		return "storage_failure"
	case KindNotFound:
		return "not_found"
	case KindNotOwner:
		return "not_owner"
	case KindInvalidTransition:
		return "invalid_transition"
	case KindInvalidItem:
		return "invalid_item"
	case KindNoAvailableCourier:
		return "no_available_courier"
	case KindConflict:
		return "conflict"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "storage_failure"
	}
}

// KindOf classifies err. A nil error has no kind; callers must check for nil first.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrNotOwner):
		return KindNotOwner
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrInvalidItem):
		return KindInvalidItem
	case errors.Is(err, ErrNoAvailableCourier):
		return KindNoAvailableCourier
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidArgument
	default:
		return KindStorageFailure
	}
}
