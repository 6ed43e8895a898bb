package events

import (
	"context"
	"log/slog"

	"backoffice/internal/core/domain/model/order"
)

// LoggingPublisher writes events to the log. It is used when no broker is configured.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger.With("component", "LoggingPublisher")}
}

func (p *LoggingPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	msg := NewOrderStatusChangedMessage(event)
	p.logger.InfoContext(ctx, "order status changed",
		"event_id", msg.EventID,
		"order_id", msg.OrderID,
		"from", msg.From,
		"to", msg.To,
		"occurred_at", msg.OccurredAt,
	)
	return nil
}
