package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

type CourierRepository struct {
	uow *UnitOfWork
}

func (r *CourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return r.uow.with(ctx, func(s *state) error {
		if _, ok := s.couriers[c.ID()]; ok {
			return fmt.Errorf("memory: courier %s already exists", c.ID())
		}
		s.couriers[c.ID()] = courierRow{name: c.Name(), availability: c.Availability()}
		return nil
	})
}

func (r *CourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var row courierRow
	err := r.uow.with(ctx, func(s *state) error {
		var ok bool
		if row, ok = s.couriers[id]; !ok {
			return errs.NewObjectNotFoundError("courier", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, row.name, row.availability)
}

func (r *CourierRepository) ListByAvailability(ctx context.Context, availability courier.Availability) ([]*courier.Courier, error) {
	var couriers []*courier.Courier
	err := r.uow.with(ctx, func(s *state) error {
		for id, row := range s.couriers {
			if row.availability != availability {
				continue
			}
			c, err := courier.RestoreCourier(id, row.name, row.availability)
			if err != nil {
				return err
			}
			couriers = append(couriers, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(couriers, func(a, b *courier.Courier) int {
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return couriers, nil
}

// UpdateAvailability is the compare-and-set on a courier's availability.
func (r *CourierRepository) UpdateAvailability(ctx context.Context, c *courier.Courier, expected courier.Availability) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return r.uow.with(ctx, func(s *state) error {
		row, ok := s.couriers[c.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("courier", c.ID())
		}
		if row.availability != expected {
			return errs.NewConflictError("courier", c.ID())
		}
		row.availability = c.Availability()
		s.couriers[c.ID()] = row
		return nil
	})
}
