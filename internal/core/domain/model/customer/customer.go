// Package customer holds the Customer entity: the party that places orders.
package customer

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrNameIsRequired    = errs.NewValueIsRequiredError("name")
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

type Customer struct {
	id      kernel.UUID
	name    string
	address string
	guard   guard.ConstructorGuard
}

// NewCustomer creates a customer with a delivery address.
func NewCustomer(id kernel.UUID, name, address string) (*Customer, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)

	var nameErr, addressErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if address == "" {
		addressErr = ErrAddressIsRequired
	}
	if err := errors.Join(id.Validate(), nameErr, addressErr); err != nil {
		return nil, err
	}

	return &Customer{
		id:      id,
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Address() string {
	return c.address
}
