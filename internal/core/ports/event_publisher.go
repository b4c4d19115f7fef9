package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// EventPublisher delivers order events to interested parties after the unit of
// work that produced them has committed. Delivery is best effort: a publishing
// failure never undoes a committed change.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
