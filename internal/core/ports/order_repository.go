package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, courier binding and offer time of an existing order,
	// but only if the stored row still has the expected status and the aggregate's
	// version. On success the stored version and aggregate.Version() are incremented.
	// A row that changed in the meantime yields errs.ErrConflict; a missing row
	// yields errs.ErrObjectNotFound.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns orders matching filter, oldest first.
	List(ctx context.Context, filter order.Filter) ([]*order.Order, error)
}
