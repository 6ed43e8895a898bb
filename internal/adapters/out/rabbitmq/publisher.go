// Package rabbitmq publishes order events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/adapters/out/events"
	"backoffice/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeType = "topic"

// Connect dials url, retrying while the broker starts, and declares the durable
// topic exchange.
func Connect(url, exchange string, logger *slog.Logger) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection
	var err error

	for attempt := 1; attempt <= 5; attempt++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		logger.Warn("failed to connect to RabbitMQ", "attempt", attempt, "error", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,     // name
		exchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("could not declare exchange: %w", err)
	}

	return conn, ch, nil
}

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// OrderEventsPublisher implements ports.OrderEventPublisher. Routing keys follow
// order.StatusChanged.RoutingKey, e.g. "order.shipped".
type OrderEventsPublisher struct {
	ch       publishChannel
	exchange string
}

func NewOrderEventsPublisher(ch *amqp.Channel, exchange string) *OrderEventsPublisher {
	return newOrderEventsPublisher(ch, exchange)
}

func newOrderEventsPublisher(ch publishChannel, exchange string) *OrderEventsPublisher {
	return &OrderEventsPublisher{ch: ch, exchange: exchange}
}

func (p *OrderEventsPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	msg := events.NewOrderStatusChangedMessage(event)
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	return p.ch.PublishWithContext(ctx,
		p.exchange,
		event.RoutingKey(),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.EventID,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
}
