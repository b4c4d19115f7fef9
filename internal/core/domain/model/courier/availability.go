package courier

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Availability is the dispatch state of a courier.
//
//	IDLE ──offer──> ON_DECISION ──accept──> BUSY
//	  ^                  │                    │
//	  └─────decline──────┘                    │
//	  └──────────────release──────────────────┘
type Availability int

const (
	AvailabilityUnknown Availability = iota

	// Idle couriers can be offered an order.
	Idle

	// OnDecision couriers have exactly one order offered and must accept or reject it.
	OnDecision

	// Busy couriers are delivering exactly one order.
	Busy
)

var availabilityNames = map[Availability]string{
	Idle:       "IDLE",
	OnDecision: "ON_DECISION",
	Busy:       "BUSY",
}

func (a Availability) String() string {
	if name, ok := availabilityNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

func (a Availability) Validate() error {
	if _, ok := availabilityNames[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// ParseAvailability converts a wire name such as "ON_DECISION".
func ParseAvailability(s string) (Availability, error) {
	for availability, name := range availabilityNames {
		if name == s {
			return availability, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%q is not a valid availability", s))
}

func (a Availability) MarshalText() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return []byte(a.String()), nil
}

func (a *Availability) UnmarshalText(text []byte) error {
	parsed, err := ParseAvailability(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
