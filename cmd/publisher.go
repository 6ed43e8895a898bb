package cmd

import (
	"errors"
	"log/slog"

	"backoffice/internal/adapters/out/events"
	"backoffice/internal/adapters/out/kafka"
	"backoffice/internal/adapters/out/rabbitmq"
	"backoffice/internal/core/ports"
)

// EventPublisher selects the order event transport: Kafka when brokers are
// configured, RabbitMQ when a URL is, and a logging publisher otherwise.
// The returned close function releases the transport.
func EventPublisher(cfg Config, logger *slog.Logger) (ports.OrderEventPublisher, func() error, error) {
	switch {
	case cfg.KafkaBrokers != "":
		producer, err := kafka.NewOrderEventsProducer(cfg.KafkaBrokers, cfg.KafkaOrderStatusTopic)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Publishing order events to Kafka", "topic", cfg.KafkaOrderStatusTopic)
		return producer, producer.Close, nil

	case cfg.RabbitMQURL != "":
		conn, ch, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Publishing order events to RabbitMQ", "exchange", cfg.RabbitMQExchange)
		closeFn := func() error {
			return errors.Join(ch.Close(), conn.Close())
		}
		return rabbitmq.NewOrderEventsPublisher(ch, cfg.RabbitMQExchange), closeFn, nil

	default:
		logger.Info("No message broker configured, order events are logged only")
		return events.NewLoggingPublisher(logger), func() error { return nil }, nil
	}
}
