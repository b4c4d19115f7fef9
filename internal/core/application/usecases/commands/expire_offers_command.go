package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrExpireOffersCommandIsNotConstructed = errors.New(
	"ExpireOffersCommand must be created via NewExpireOffersCommand constructor",
)

// ExpireOffersCommand withdraws offers that couriers left undecided for longer than TTL.
type ExpireOffersCommand struct {
	ttl   time.Duration
	guard guard.ConstructorGuard
}

func NewExpireOffersCommand(ttl time.Duration) (ExpireOffersCommand, error) {
	if ttl <= 0 {
		return ExpireOffersCommand{}, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}
	return ExpireOffersCommand{ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpireOffersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOffersCommandIsNotConstructed)
}

func (c ExpireOffersCommand) TTL() time.Duration {
	return c.ttl
}
