package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrRegisterRestaurantCommandIsNotConstructed = errors.New(
		"RegisterRestaurantCommand must be created via NewRegisterRestaurantCommand constructor",
	)
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// party is a named actor with an address: customers and restaurants.
type party struct {
	id      kernel.UUID
	name    string
	address string
	guard   guard.ConstructorGuard
}

func newParty(name, address string) (party, error) {
	var nameErr, addressErr error
	if strings.TrimSpace(name) == "" {
		nameErr = ErrNameIsRequired
	}
	if strings.TrimSpace(address) == "" {
		addressErr = ErrAddressIsRequired
	}
	if err := errors.Join(nameErr, addressErr); err != nil {
		return party{}, err
	}

	return party{
		id:      kernel.NewUUID(),
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (p party) Name() string {
	return p.name
}

func (p party) Address() string {
	return p.address
}

// RegisterCustomerCommand creates a customer with a generated ID.
type RegisterCustomerCommand struct {
	party
}

func NewRegisterCustomerCommand(name, address string) (RegisterCustomerCommand, error) {
	p, err := newParty(name, address)
	if err != nil {
		return RegisterCustomerCommand{}, err
	}
	return RegisterCustomerCommand{party: p}, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.id
}

// RegisterRestaurantCommand creates a restaurant with a generated ID and an empty menu.
type RegisterRestaurantCommand struct {
	party
}

func NewRegisterRestaurantCommand(name, address string) (RegisterRestaurantCommand, error) {
	p, err := newParty(name, address)
	if err != nil {
		return RegisterRestaurantCommand{}, err
	}
	return RegisterRestaurantCommand{party: p}, nil
}

func (c RegisterRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRestaurantCommandIsNotConstructed)
}

func (c RegisterRestaurantCommand) RestaurantID() kernel.UUID {
	return c.id
}
