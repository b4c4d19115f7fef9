package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/adapters/out/messaging"
	"fooddelivery/internal/adapters/out/postgres"
	redisstore "fooddelivery/internal/adapters/out/redis"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// CompositionRoot owns the adapters selected by Config and builds every
// handler on top of them.
type CompositionRoot struct {
	configs    Config
	uowFactory ports.UnitOfWorkFactory
	sessions   ports.SessionStore
	dispatcher services.CourierDispatcher
	metrics    *telemetry.DispatchMetrics
	logger     *slog.Logger
	closers    []func() error
}

// NewCompositionRoot connects storage, the session store and the event
// publisher. Close releases them.
func NewCompositionRoot(ctx context.Context, configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		configs:    configs,
		dispatcher: services.NewCourierDispatcher(),
		logger:     logger,
	}

	publisher := c.newPublisher()

	switch configs.Storage {
	case StorageMemory:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, logger)
	default:
		dsn := postgres.DSN(configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
		if configs.MigrationsPath != "" {
			if err := postgres.MigrateUp(configs.MigrationsPath, dsn); err != nil {
				_ = c.Close()
				return nil, err
			}
		}
		gormDB, err := postgres.Open(ctx, dsn)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("unwrap database pool: %w", err)
		}
		c.closers = append(c.closers, sqlDB.Close)
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)
	}

	if configs.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			_ = c.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", configs.RedisAddr, err)
		}
		c.closers = append(c.closers, client.Close)
		c.sessions = redisstore.NewSessionStore(client)
	} else {
		c.sessions = memory.NewSessionStore()
	}

	return c, nil
}

func (c *CompositionRoot) newPublisher() ports.EventPublisher {
	brokers := c.configs.KafkaBrokers()
	if len(brokers) == 0 {
		return messaging.NewLogPublisher(c.logger)
	}
	publisher := messaging.NewKafkaPublisher(brokers, c.configs.KafkaOrderChangedTopic)
	c.closers = append(c.closers, publisher.Close)
	return publisher
}

// Close releases adapters in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

// UseDispatchMetrics makes handlers built afterwards report dispatch
// outcomes to m.
func (c *CompositionRoot) UseDispatchMetrics(m *telemetry.DispatchMetrics) {
	c.metrics = m
}

func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessions
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewMenuValidator())
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRegisterRestaurantCommandHandler() commands.RegisterRestaurantCommandHandler {
	return commands.NewRegisterRestaurantCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateAddFoodCommandHandler() commands.AddFoodCommandHandler {
	return commands.NewAddFoodCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusAsRestaurantCommandHandler() commands.UpdateOrderStatusAsRestaurantCommandHandler {
	return commands.NewUpdateOrderStatusAsRestaurantCommandHandler(c.uoWFactory(), c.dispatcher).
		WithRecorder(c.recorder())
}

func (c *CompositionRoot) CreateUpdateOrderStatusAsCourierCommandHandler() commands.UpdateOrderStatusAsCourierCommandHandler {
	return commands.NewUpdateOrderStatusAsCourierCommandHandler(c.uoWFactory(), c.dispatcher).
		WithRecorder(c.recorder())
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.uoWFactory(), c.dispatcher).
		WithRecorder(c.recorder())
}

func (c *CompositionRoot) CreateExpireOffersCommandHandler() commands.ExpireOffersCommandHandler {
	return commands.NewExpireOffersCommandHandler(c.uoWFactory(), c.dispatcher).
		WithRecorder(c.recorder())
}

func (c *CompositionRoot) recorder() commands.DispatchRecorder {
	if c.metrics == nil {
		return nil
	}
	return c.metrics
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// HTTPHandlers builds every use case served by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterCustomer:   c.CreateRegisterCustomerCommandHandler(),
		RegisterRestaurant: c.CreateRegisterRestaurantCommandHandler(),
		CreateCourier:      c.CreateCreateCourierCommandHandler(),
		AddFood:            c.CreateAddFoodCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateAsRestaurant: c.CreateUpdateOrderStatusAsRestaurantCommandHandler(),
		UpdateAsCourier:    c.CreateUpdateOrderStatusAsCourierCommandHandler(),
		GetActor:           queries.NewGetActorQueryHandler(c.uowFactory),
		GetMenu:            queries.NewGetMenuQueryHandler(c.uowFactory),
		GetAllCouriers:     queries.NewGetAllCouriersQueryHandler(c.uowFactory),
		ListCurrentOrders:  queries.NewListCurrentOrdersQueryHandler(c.uowFactory),
		GetOrder:           queries.NewGetOrderQueryHandler(c.uowFactory),
		GetSuggestedOrder:  queries.NewGetSuggestedOrderQueryHandler(c.uowFactory),
		GetCurrentDelivery: queries.NewGetCurrentDeliveryQueryHandler(c.uowFactory),
	}
}

// NewJobManager builds the dispatch background jobs on the metrics set by
// UseDispatchMetrics, if any.
func (c *CompositionRoot) NewJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		jobs.Config{
			AssignmentSchedule: c.configs.AssignmentSchedule,
			ExpirySchedule:     c.configs.ExpirySchedule,
			OfferTTL:           c.configs.OfferTTL,
		},
		c.CreateAssignCourierCommandHandler(),
		c.CreateExpireOffersCommandHandler(),
		c.metrics,
		c.logger,
	)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
