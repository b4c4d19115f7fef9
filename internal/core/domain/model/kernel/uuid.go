package kernel

import (
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID, one
// that did not come from NewUUID, UUIDFromString or UUIDFromBytes.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the value object identifying customers, restaurants, couriers,
// foods and orders. It wraps github.com/google/uuid.
//
// The zero value is invalid: Validate rejects it and every aggregate
// constructor validates the identifiers it is given. UUID is immutable and
// safe for concurrent use.
//
// UUID implements encoding.TextMarshaler and encoding.TextUnmarshaler, so it
// serializes as its canonical string in JSON bodies, event payloads and
// session records.
//
// Example usage:
//
//	// Identify a new aggregate
//	orderID := kernel.NewUUID()
//
//	// Parse an identifier from a request path
//	courierID, err := kernel.UUIDFromString(c.Param("id"))
//	if err != nil {
//	    return err // errs.ErrValueIsInvalid
//	}
//
//	// Embed in a wire type
//	type OrderResponse struct {
//	    ID kernel.UUID `json:"id"`
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier. This is how every
// aggregate gets its ID when it is first created.
//
// Example:
//
//	cmd, err := commands.NewCreateCourierCommand("Bob") // uses kernel.NewUUID()
//	fmt.Println(cmd.CourierID()) // e.g. "550e8400-e29b-41d4-a716-446655440000"
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the textual form of a UUID. It accepts the forms
// google/uuid accepts:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Malformed input fails with errs.ErrValueIsInvalid. The nil UUID parses but
// fails with ErrUUIDIsNotConstructed.
//
// Example:
//
//	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes builds a UUID from its 16-byte representation, as stored by
// the persistence adapters. Any other length fails with errs.ErrValueIsInvalid.
//
// Example:
//
//	var raw []byte
//	if err := row.Scan(&raw); err != nil {
//	    return err
//	}
//	id, err := kernel.UUIDFromBytes(raw)
//	if err != nil {
//	    return fmt.Errorf("corrupt courier id: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// String returns the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form,
// lower case. The zero value renders as the nil UUID.
//
// Example:
//
//	logger.Info("order created", "order_id", id.String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google/uuid value. Slice it for the raw
// 16 bytes.
//
// Example:
//
//	raw := id.Bytes()
//	_, err := db.ExecContext(ctx, query, raw[:])
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
//
// Example:
//
//	a := kernel.NewUUID()
//	b := a
//
//	fmt.Println(a.IsEqual(b))                // true
//	fmt.Println(a.IsEqual(kernel.NewUUID())) // false
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsZero reports whether the UUID was never constructed.
func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

// Validate returns ErrUUIDIsNotConstructed for the zero value. Aggregate
// setters call it on every identifier they receive.
//
// Example:
//
//	func (o *Order) setID(id kernel.UUID) error {
//	    if err := id.Validate(); err != nil {
//	        return err
//	    }
//	    o.id = id
//	    return nil
//	}
func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler so identifiers serialize as strings.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the rules of
// UUIDFromString.
func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := UUIDFromString(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
