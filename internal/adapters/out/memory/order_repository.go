package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.uow.with(ctx, func(s *state) error {
		if _, ok := s.orders[aggregate.ID()]; ok {
			return fmt.Errorf("memory: order %s already exists", aggregate.ID())
		}
		s.seq++
		s.orders[aggregate.ID()] = orderRow{snapshot: aggregate.Snapshot(), seq: s.seq}
		return nil
	})
	if err != nil {
		return err
	}

	r.uow.track(ctx, aggregate)
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.uow.with(ctx, func(s *state) error {
		row, ok := s.orders[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		if row.snapshot.Status != expected || row.snapshot.Version != aggregate.Version() {
			return errs.NewConflictError("order", aggregate.ID())
		}

		row.snapshot = aggregate.Snapshot()
		row.snapshot.Version++
		s.orders[aggregate.ID()] = row
		return nil
	})
	if err != nil {
		return err
	}

	aggregate.IncrementVersion()
	r.uow.track(ctx, aggregate)
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var snapshot order.Snapshot
	err := r.uow.with(ctx, func(s *state) error {
		row, ok := s.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id)
		}
		snapshot = row.snapshot
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(snapshot)
}

func (r *OrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	var rows []orderRow
	err := r.uow.with(ctx, func(s *state) error {
		for _, row := range s.orders {
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(rows, func(a, b orderRow) int {
		if c := a.snapshot.CreatedAt.Compare(b.snapshot.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, restoreErr := order.RestoreOrder(row.snapshot)
		if restoreErr != nil {
			return nil, restoreErr
		}
		if filter.Matches(o) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
