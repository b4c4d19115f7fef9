package messaging

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
)

// LogPublisher writes events to the log. It is used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "event_log")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...order.Event) error {
	for _, e := range events {
		attrs := []any{
			"type", string(e.Type),
			"order_id", e.OrderID.String(),
			"from", e.From.String(),
			"to", e.To.String(),
		}
		if e.Actor != "" {
			attrs = append(attrs, "actor", e.Actor)
		}
		if e.CourierID != nil {
			attrs = append(attrs, "courier_id", e.CourierID.String())
		}
		p.logger.InfoContext(ctx, "order event", attrs...)
	}
	return nil
}
