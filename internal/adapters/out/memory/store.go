// Package memory provides an in-process implementation of the persistence
// ports. A unit of work is serializable: Begin takes the store lock and works
// on a private copy of the state, Commit swaps the copy in, and Rollback drops
// it. Repositories used outside a transaction lock the store per call.
// Waiting for the lock gives up when the caller's context is done.
package memory

import (
	"maps"
	"slices"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"

	"golang.org/x/sync/semaphore"
)

type orderRow struct {
	snapshot order.Snapshot
	seq      int64
}

type courierRow struct {
	name         string
	availability courier.Availability
}

// state holds everything a transaction can change. Foods, restaurants and
// customers have no mutators, so their pointers are shared between copies.
type state struct {
	orders      map[kernel.UUID]orderRow
	couriers    map[kernel.UUID]courierRow
	foods       map[kernel.UUID]*restaurant.Food
	menus       map[kernel.UUID][]kernel.UUID
	restaurants map[kernel.UUID]*restaurant.Restaurant
	customers   map[kernel.UUID]*customer.Customer
	seq         int64
}

func newState() *state {
	return &state{
		orders:      make(map[kernel.UUID]orderRow),
		couriers:    make(map[kernel.UUID]courierRow),
		foods:       make(map[kernel.UUID]*restaurant.Food),
		menus:       make(map[kernel.UUID][]kernel.UUID),
		restaurants: make(map[kernel.UUID]*restaurant.Restaurant),
		customers:   make(map[kernel.UUID]*customer.Customer),
	}
}

func (s *state) clone() *state {
	menus := make(map[kernel.UUID][]kernel.UUID, len(s.menus))
	for id, foods := range s.menus {
		menus[id] = slices.Clone(foods)
	}

	return &state{
		orders:      maps.Clone(s.orders),
		couriers:    maps.Clone(s.couriers),
		foods:       maps.Clone(s.foods),
		menus:       menus,
		restaurants: maps.Clone(s.restaurants),
		customers:   maps.Clone(s.customers),
		seq:         s.seq,
	}
}

// Store is the shared state behind every unit of work created by one factory.
type Store struct {
	lock  *semaphore.Weighted
	state *state
}

func NewStore() *Store {
	return &Store{
		lock:  semaphore.NewWeighted(1),
		state: newState(),
	}
}
