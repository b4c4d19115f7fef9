// Package http exposes the order lifecycle over a JSON API built on Echo.
// Role-scoped routes authenticate with a bearer token resolved through the
// session store; every domain error is mapped to a status code by ErrorHandler.
package http

import (
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	RegisterCustomer   commands.RegisterCustomerCommandHandler
	RegisterRestaurant commands.RegisterRestaurantCommandHandler
	CreateCourier      commands.CreateCourierCommandHandler
	AddFood            commands.AddFoodCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateAsRestaurant commands.UpdateOrderStatusAsRestaurantCommandHandler
	UpdateAsCourier    commands.UpdateOrderStatusAsCourierCommandHandler

	// Query handlers
	GetActor           queries.GetActorQueryHandler
	GetMenu            queries.GetMenuQueryHandler
	GetAllCouriers     queries.GetAllCouriersQueryHandler
	ListCurrentOrders  queries.ListCurrentOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	GetSuggestedOrder  queries.GetSuggestedOrderQueryHandler
	GetCurrentDelivery queries.GetCurrentDeliveryQueryHandler
}

// Server holds the use cases and the session store behind the HTTP routes.
type Server struct {
	handlers   Handlers
	sessions   ports.SessionStore
	sessionTTL time.Duration
	logger     *slog.Logger
	newToken   func() string
}

// NewServer creates a server issuing sessions that live for sessionTTL.
func NewServer(handlers Handlers, sessions ports.SessionStore, sessionTTL time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers:   handlers,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger.With("component", "http"),
		newToken:   newSessionToken,
	}
}
