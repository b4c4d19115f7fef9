package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CreateSessionRequest struct {
	Role string `json:"role"`
	ID   string `json:"id"`
}

type SessionResponse struct {
	Token     string      `json:"token"`
	Role      kernel.Role `json:"role"`
	ActorID   kernel.UUID `json:"actor_id"`
	Name      string      `json:"name"`
	ExpiresAt time.Time   `json:"expires_at"`
}

type PartyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type NewCourierRequest struct {
	Name string `json:"name"`
}

type NewFoodRequest struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Availability string          `json:"availability"`
}

type CreatedResponse struct {
	ID kernel.UUID `json:"id"`
}

type FoodResponse struct {
	ID           kernel.UUID     `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Availability string          `json:"availability"`
}

type CourierResponse struct {
	ID           kernel.UUID `json:"id"`
	Name         string      `json:"name"`
	Availability string      `json:"availability"`
}

type OrderItemRequest struct {
	FoodID   string `json:"food_id"`
	Quantity int    `json:"quantity"`
}

type NewOrderRequest struct {
	RestaurantID string             `json:"restaurant_id"`
	Items        []OrderItemRequest `json:"items"`
}

type UpdateStatusRequest struct {
	Status         string  `json:"status"`
	ExpectedStatus *string `json:"expected_status,omitempty"`
}

type OrderItemResponse struct {
	FoodID   kernel.UUID `json:"food_id"`
	Quantity int         `json:"quantity"`
}

type OrderResponse struct {
	ID           kernel.UUID         `json:"id"`
	CustomerID   kernel.UUID         `json:"customer_id"`
	RestaurantID kernel.UUID         `json:"restaurant_id"`
	CourierID    *kernel.UUID        `json:"courier_id,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
}

// StatusChangeResponse is the order after a restaurant status change. Kind is
// set when the change committed but dispatch found no idle courier.
type StatusChangeResponse struct {
	OrderResponse
	Kind string `json:"kind,omitempty"`
}

func toOrderResponse(o queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{FoodID: item.FoodID, Quantity: item.Quantity}
	}
	return OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		CourierID:    o.CourierID,
		Items:        items,
		Status:       o.Status.String(),
		CreatedAt:    o.CreatedAt,
	}
}

func toOrderResponses(orders []queries.OrderResponse) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}

// bind decodes the request body. Malformed JSON is an invalid argument.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}
