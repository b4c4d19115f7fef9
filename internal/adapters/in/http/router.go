package http

import (
	"context"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the Echo instance serving every route. metrics may be nil.
func NewRouter(s *Server, metrics http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.LogAttrs(context.WithoutCancel(c.Request().Context()), level, "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api/v1")

	api.POST("/sessions", s.CreateSession)
	api.DELETE("/sessions", s.DeleteSession)

	api.POST("/customers", s.RegisterCustomer)
	api.POST("/restaurants", s.RegisterRestaurant)
	api.GET("/restaurants/:id/menu", s.GetMenu)
	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers", s.GetCouriers)

	customer := api.Group("/customer", s.requireRole(kernel.RoleCustomer))
	customer.POST("/orders", s.CreateOrder)
	customer.GET("/orders/current", s.ListCurrentOrders)
	customer.GET("/orders/:id", s.GetOrder)

	restaurant := api.Group("/restaurant", s.requireRole(kernel.RoleRestaurant))
	restaurant.POST("/foods", s.AddFood)
	restaurant.GET("/orders/current", s.ListCurrentOrders)
	restaurant.GET("/orders/:id", s.GetOrder)
	restaurant.POST("/orders/:id/status", s.UpdateOrderStatusAsRestaurant)

	courier := api.Group("/courier", s.requireRole(kernel.RoleCourier))
	courier.GET("/orders/suggested", s.GetSuggestedOrder)
	courier.GET("/orders/current", s.GetCurrentDelivery)
	courier.GET("/orders/:id", s.GetOrder)
	courier.POST("/orders/:id/status", s.UpdateOrderStatusAsCourier)

	return e
}
