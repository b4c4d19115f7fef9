package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State graph (edges are role-scoped, see ValidateTransition):
//
//	RESTAURANT_PENDING ──> RESTAURANT_ACCEPT ──> DELIVERER_PENDING ──> DELIVERING ──> DONE
//	        │                    │    │                 │  ↺ reject         │
//	        │                    │    └──────> DONE     │                   │
//	        └────────────────────┴──────────────────────┴───────> CANCEL <──┘
//
// DONE and CANCEL are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// RestaurantPending is the initial status; the restaurant has not reacted yet.
	RestaurantPending

	// RestaurantAccept means the restaurant is preparing the order.
	RestaurantAccept

	// DelivererPending means the order waits for a courier to take it.
	// The order may or may not be offered to a courier at this point.
	DelivererPending

	// Delivering means the bound courier is carrying the order.
	Delivering

	// Done is terminal.
	Done

	// Cancel is terminal.
	Cancel
)

var statusNames = map[Status]string{
	RestaurantPending: "RESTAURANT_PENDING",
	RestaurantAccept:  "RESTAURANT_ACCEPT",
	DelivererPending:  "DELIVERER_PENDING",
	Delivering:        "DELIVERING",
	Done:              "DONE",
	Cancel:            "CANCEL",
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{RestaurantPending, RestaurantAccept, DelivererPending, Delivering, Done, Cancel}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN".
func (s Status) String() string {
	if str, ok := statusNames[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Done || s == Cancel
}

// ParseStatus converts a wire name such as "DELIVERER_PENDING" to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
