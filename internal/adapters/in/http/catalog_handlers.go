package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
)

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(c echo.Context) error {
	var req PartyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterCustomerCommand(req.Name, req.Address)
	if err != nil {
		return err
	}
	if err = s.handlers.RegisterCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CustomerID()})
}

// RegisterRestaurant handles POST /api/v1/restaurants.
func (s *Server) RegisterRestaurant(c echo.Context) error {
	var req PartyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterRestaurantCommand(req.Name, req.Address)
	if err != nil {
		return err
	}
	if err = s.handlers.RegisterRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.RestaurantID()})
}

// AddFood handles POST /api/v1/restaurant/foods. The food is added to the
// signed-in restaurant's menu. Availability defaults to AVAILABLE.
func (s *Server) AddFood(c echo.Context) error {
	restaurantID := sessionFrom(c).ActorID

	var req NewFoodRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	availability := restaurant.Available
	if req.Availability != "" {
		parsed, err := restaurant.ParseFoodAvailability(req.Availability)
		if err != nil {
			return err
		}
		availability = parsed
	}

	cmd, err := commands.NewAddFoodCommand(restaurantID, req.Name, req.Price, availability)
	if err != nil {
		return err
	}
	if err = s.handlers.AddFood.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.FoodID()})
}

// GetMenu handles GET /api/v1/restaurants/:id/menu.
func (s *Server) GetMenu(c echo.Context) error {
	restaurantID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetMenuQuery(restaurantID)
	if err != nil {
		return err
	}
	foods, err := s.handlers.GetMenu.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]FoodResponse, len(foods))
	for i, f := range foods {
		response[i] = FoodResponse{
			ID:           f.ID,
			Name:         f.Name,
			Price:        f.Price,
			Availability: f.Availability.String(),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers. New couriers start IDLE.
func (s *Server) CreateCourier(c echo.Context) error {
	var req NewCourierRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CourierID()})
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(c echo.Context) error {
	couriers, err := s.handlers.GetAllCouriers.Handle(c.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return err
	}

	response := make([]CourierResponse, len(couriers))
	for i, courier := range couriers {
		response[i] = CourierResponse{
			ID:           courier.ID,
			Name:         courier.Name,
			Availability: courier.Availability.String(),
		}
	}
	return c.JSON(http.StatusOK, response)
}
