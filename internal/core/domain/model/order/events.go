package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// EventType tells consumers what happened to the order.
type EventType string

const (
	// EventStatusChanged is recorded when an actor moves the order to a new status.
	EventStatusChanged EventType = "order.status_changed"
	// EventCourierOffered is recorded when dispatch binds the order to a courier.
	EventCourierOffered EventType = "order.courier_offered"
	// EventCourierReleased is recorded when a courier's offer is withdrawn,
	// after a rejection or an expired offer.
	EventCourierReleased EventType = "order.courier_released"
)

// Event is recorded on the aggregate whenever its status or courier binding
// changes, and published once the surrounding unit of work commits.
//
// CourierID is the binding at the moment the event was recorded: the newly
// offered courier for EventCourierOffered, the courier that lost the offer
// for EventCourierReleased. Binding events carry no actor and have From and
// To equal to the current status.
//
// Example stream for a rejected offer that moves to a second courier:
//
//	order.status_changed    DELIVERER_PENDING -> DELIVERER_PENDING  courier=D1 actor=courier
//	order.courier_released  courier=D1
//	order.courier_offered   courier=D2
type Event struct {
	Type         EventType    `json:"type"`
	OrderID      kernel.UUID  `json:"order_id"`
	CustomerID   kernel.UUID  `json:"customer_id"`
	RestaurantID kernel.UUID  `json:"restaurant_id"`
	CourierID    *kernel.UUID `json:"courier_id,omitempty"`
	Actor        string       `json:"actor,omitempty"`
	From         Status       `json:"from"`
	To           Status       `json:"to"`
	OccurredAt   time.Time    `json:"occurred_at"`
}
