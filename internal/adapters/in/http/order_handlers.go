package http

import (
	"context"
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/customer/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	session := sessionFrom(c)

	var req NewOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return err
	}
	items := make([]order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		foodID, parseErr := kernel.UUIDFromString(it.FoodID)
		if parseErr != nil {
			return parseErr
		}
		item, itemErr := order.NewItem(foodID, it.Quantity)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), session.ActorID, restaurantID, items)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	created, err := s.readOrder(c.Request().Context(), session.Role, session.ActorID, cmd.OrderID())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toOrderResponse(created))
}

// ListCurrentOrders handles GET /api/v1/{customer,restaurant}/orders/current.
func (s *Server) ListCurrentOrders(c echo.Context) error {
	session := sessionFrom(c)

	query, err := queries.NewListCurrentOrdersQuery(session.Role, session.ActorID)
	if err != nil {
		return err
	}
	orders, err := s.handlers.ListCurrentOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/v1/{role}/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	session := sessionFrom(c)

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	o, err := s.readOrder(c.Request().Context(), session.Role, session.ActorID, orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// GetSuggestedOrder handles GET /api/v1/courier/orders/suggested.
func (s *Server) GetSuggestedOrder(c echo.Context) error {
	query, err := queries.NewGetSuggestedOrderQuery(sessionFrom(c).ActorID)
	if err != nil {
		return err
	}
	o, err := s.handlers.GetSuggestedOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// GetCurrentDelivery handles GET /api/v1/courier/orders/current.
func (s *Server) GetCurrentDelivery(c echo.Context) error {
	query, err := queries.NewGetCurrentDeliveryQuery(sessionFrom(c).ActorID)
	if err != nil {
		return err
	}
	o, err := s.handlers.GetCurrentDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// UpdateOrderStatusAsRestaurant handles POST /api/v1/restaurant/orders/:id/status.
// Moving an order to DELIVERER_PENDING while no courier is idle still succeeds:
// the response is 202 with kind no_available_courier and the order waits for
// the assignment job.
func (s *Server) UpdateOrderStatusAsRestaurant(c echo.Context) error {
	session := sessionFrom(c)

	orderID, status, expected, err := parseStatusChange(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusAsRestaurantCommand(session.ActorID, orderID, status)
	if err != nil {
		return err
	}
	if expected != nil {
		cmd = cmd.WithExpectedStatus(*expected)
	}

	code := http.StatusOK
	err = s.handlers.UpdateAsRestaurant.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrNoAvailableCourier) {
		code = http.StatusAccepted
	} else if err != nil {
		return err
	}

	o, err := s.readOrder(c.Request().Context(), session.Role, session.ActorID, orderID)
	if err != nil {
		return err
	}
	resp := StatusChangeResponse{OrderResponse: toOrderResponse(o)}
	if code == http.StatusAccepted {
		resp.Kind = errs.KindNoAvailableCourier.String()
	}
	return c.JSON(code, resp)
}

// UpdateOrderStatusAsCourier handles POST /api/v1/courier/orders/:id/status.
// Requesting DELIVERER_PENDING rejects the offer; the order is no longer the
// courier's afterwards, so the response carries no body.
func (s *Server) UpdateOrderStatusAsCourier(c echo.Context) error {
	session := sessionFrom(c)

	orderID, status, expected, err := parseStatusChange(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusAsCourierCommand(session.ActorID, orderID, status)
	if err != nil {
		return err
	}
	if expected != nil {
		cmd = cmd.WithExpectedStatus(*expected)
	}

	if err = s.handlers.UpdateAsCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	if status == order.DelivererPending {
		return c.NoContent(http.StatusNoContent)
	}

	o, err := s.readOrder(c.Request().Context(), session.Role, session.ActorID, orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

func parseStatusChange(c echo.Context) (kernel.UUID, order.Status, *order.Status, error) {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return kernel.UUID{}, order.Unknown, nil, err
	}

	var req UpdateStatusRequest
	if err = bind(c, &req); err != nil {
		return kernel.UUID{}, order.Unknown, nil, err
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return kernel.UUID{}, order.Unknown, nil, err
	}

	var expected *order.Status
	if req.ExpectedStatus != nil {
		prior, parseErr := order.ParseStatus(*req.ExpectedStatus)
		if parseErr != nil {
			return kernel.UUID{}, order.Unknown, nil, parseErr
		}
		expected = &prior
	}
	return orderID, status, expected, nil
}

func (s *Server) readOrder(ctx context.Context, role kernel.Role, actorID, orderID kernel.UUID) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(role, actorID, orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.handlers.GetOrder.Handle(ctx, query)
}
