package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []order.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, time.Now())
	require.NoError(t, err)
	return o
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, nil)

	t.Run("committed order is visible to other units of work", func(t *testing.T) {
		o := newOrder(t)
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
		require.NoError(t, uow.Commit(ctx))

		got, err := factory.Create().OrderRepository().Get(ctx, o.ID())

		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
	})

	t.Run("rolled back order is discarded", func(t *testing.T) {
		o := newOrder(t)
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
		require.NoError(t, uow.Rollback(ctx))

		_, err := factory.Create().OrderRepository().Get(ctx, o.ID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("commit and rollback need a transaction", func(t *testing.T) {
		uow := factory.Create()

		require.ErrorIs(t, uow.Commit(ctx), memory.ErrNoTransaction)
		require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoTransaction)
	})

	t.Run("rollback after commit is harmless", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Commit(ctx))

		require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoTransaction)

		other := factory.Create()
		require.NoError(t, other.Begin(ctx))
		require.NoError(t, other.Rollback(ctx))
	})
}

func TestOrderRepository_ConditionalUpdate(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, nil)
	repo := factory.Create().OrderRepository()

	o := newOrder(t)
	require.NoError(t, repo.Add(ctx, o))

	first, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	second, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)

	require.NoError(t, first.ChangeStatus(kernel.RoleRestaurant, order.RestaurantAccept, time.Now()))
	require.NoError(t, repo.Update(ctx, first, order.RestaurantPending))
	assert.Equal(t, 1, first.Version())

	t.Run("stale copy loses", func(t *testing.T) {
		require.NoError(t, second.ChangeStatus(kernel.RoleRestaurant, order.Cancel, time.Now()))

		err = repo.Update(ctx, second, order.RestaurantPending)

		require.ErrorIs(t, err, errs.ErrConflict)
		stored, getErr := repo.Get(ctx, o.ID())
		require.NoError(t, getErr)
		assert.Equal(t, order.RestaurantAccept, stored.Status())
	})

	t.Run("wrong expected status loses", func(t *testing.T) {
		require.ErrorIs(t, repo.Update(ctx, first, order.DelivererPending), errs.ErrConflict)
	})

	t.Run("missing order is not found", func(t *testing.T) {
		require.ErrorIs(t, repo.Update(ctx, newOrder(t), order.RestaurantPending), errs.ErrObjectNotFound)
	})
}

func TestOrderRepository_List(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, nil).Create().OrderRepository()

	older := newOrder(t)
	newer := newOrder(t)
	require.NoError(t, repo.Add(ctx, older))
	require.NoError(t, repo.Add(ctx, newer))
	require.NoError(t, newer.ChangeStatus(kernel.RoleRestaurant, order.Cancel, time.Now()))
	require.NoError(t, repo.Update(ctx, newer, order.RestaurantPending))

	all, err := repo.List(ctx, order.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].IsEqual(older))

	pending, err := repo.List(ctx, order.Filter{Statuses: []order.Status{order.RestaurantPending}})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.True(t, pending[0].IsEqual(older))
}

func TestCourierRepository_UpdateAvailability(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, nil).Create().CourierRepository()

	c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, c))

	require.NoError(t, c.Offer())
	require.NoError(t, repo.UpdateAvailability(ctx, c, courier.Idle))

	t.Run("second claim conflicts", func(t *testing.T) {
		stale, getErr := courier.RestoreCourier(c.ID(), c.Name(), courier.Idle)
		require.NoError(t, getErr)
		require.NoError(t, stale.Offer())

		require.ErrorIs(t, repo.UpdateAvailability(ctx, stale, courier.Idle), errs.ErrConflict)
	})

	t.Run("lists by availability", func(t *testing.T) {
		idle, listErr := repo.ListByAvailability(ctx, courier.Idle)
		require.NoError(t, listErr)
		assert.Empty(t, idle)

		onDecision, listErr := repo.ListByAvailability(ctx, courier.OnDecision)
		require.NoError(t, listErr)
		require.Len(t, onDecision, 1)
		assert.True(t, onDecision[0].IsEqual(c))
	})

	t.Run("missing courier", func(t *testing.T) {
		other, newErr := courier.NewCourier(kernel.NewUUID(), "Bob")
		require.NoError(t, newErr)

		require.ErrorIs(t, repo.UpdateAvailability(ctx, other, courier.Idle), errs.ErrObjectNotFound)
		_, getErr := repo.Get(ctx, other.ID())
		require.ErrorIs(t, getErr, errs.ErrObjectNotFound)
	})
}

func TestUnitOfWork_PublishesEventsAfterCommit(t *testing.T) {
	ctx := t.Context()
	publisher := &recordingPublisher{}
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, nil)

	o := newOrder(t)
	require.NoError(t, factory.Create().OrderRepository().Add(ctx, o))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.ChangeStatus(kernel.RoleRestaurant, order.RestaurantAccept, time.Now()))
	require.NoError(t, uow.OrderRepository().Update(ctx, loaded, order.RestaurantPending))
	assert.Empty(t, publisher.events)

	require.NoError(t, uow.Commit(ctx))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, order.RestaurantAccept, publisher.events[0].To)
	assert.Empty(t, loaded.Events())
}

func TestUnitOfWork_RollbackDropsEvents(t *testing.T) {
	ctx := t.Context()
	publisher := &recordingPublisher{}
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, nil)

	o := newOrder(t)
	require.NoError(t, factory.Create().OrderRepository().Add(ctx, o))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, o.ChangeStatus(kernel.RoleRestaurant, order.Cancel, time.Now()))
	require.NoError(t, uow.OrderRepository().Update(ctx, o, order.RestaurantPending))
	require.NoError(t, uow.Rollback(ctx))

	assert.Empty(t, publisher.events)
}

func TestUnitOfWork_BeginRespectsContext(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, nil)

	holder := factory.Create()
	require.NoError(t, holder.Begin(ctx))

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	waiter := factory.Create()
	err := waiter.Begin(waitCtx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.ErrorIs(t, waiter.Rollback(ctx), memory.ErrNoTransaction, "a failed Begin holds nothing")

	_, err = factory.Create().OrderRepository().Get(waitCtx, kernel.NewUUID())
	require.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, holder.Rollback(ctx))

	next := factory.Create()
	require.NoError(t, next.Begin(ctx))
	require.NoError(t, next.Rollback(ctx))
}
