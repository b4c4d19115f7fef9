package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("memory: no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewUnitOfWorkFactory returns a factory whose units of work publish order
// events after commit. publisher may be nil.
func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "memory_uow"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork is not safe for concurrent use; create one per operation.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger

	tx      *state
	tracked []*order.Order
}

// Begin blocks until no other transaction holds the store, or fails with the
// context's error once ctx is done.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	if err := uow.store.lock.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	uow.tx = uow.store.state.clone()
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}

	uow.store.state = uow.tx
	uow.tx = nil
	uow.store.lock.Release(1)

	uow.publishTracked(ctx)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}

	uow.tx = nil
	uow.tracked = nil
	uow.store.lock.Release(1)
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &CourierRepository{uow: uow}
}

func (uow *UnitOfWork) FoodRepository() ports.FoodRepository {
	return &FoodRepository{uow: uow}
}

func (uow *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &RestaurantRepository{uow: uow}
}

func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{uow: uow}
}

// with runs fn on the transaction copy, or on the shared state under the lock.
func (uow *UnitOfWork) with(ctx context.Context, fn func(s *state) error) error {
	if uow.tx != nil {
		return fn(uow.tx)
	}

	if err := uow.store.lock.Acquire(ctx, 1); err != nil {
		return err
	}
	defer uow.store.lock.Release(1)
	return fn(uow.store.state)
}

// track remembers o for event publishing; outside a transaction its events
// are published right away.
func (uow *UnitOfWork) track(ctx context.Context, o *order.Order) {
	uow.tracked = append(uow.tracked, o)
	if uow.tx == nil {
		uow.publishTracked(ctx)
	}
}

func (uow *UnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.tracked
	uow.tracked = nil

	var events []order.Event
	for _, o := range tracked {
		events = append(events, o.Events()...)
		o.ClearEvents()
	}
	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.ErrorContext(ctx, "failed to publish order events", "count", len(events), "error", err)
	}
}
