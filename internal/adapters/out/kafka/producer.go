// Package kafka publishes order events to a Kafka topic with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/adapters/out/events"
	"backoffice/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// publishBatchTimeout bounds how long a synchronous publish waits for more
// messages to fill a batch; one status change is one message.
const publishBatchTimeout = 5 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventsProducer implements ports.OrderEventPublisher. Messages are keyed by
// order ID, so every event of one order lands on the same partition in order.
type OrderEventsProducer struct {
	writer messageWriter
}

// NewOrderEventsProducer creates a producer for topic on the comma-separated brokers.
func NewOrderEventsProducer(brokersCSV, topic string) (*OrderEventsProducer, error) {
	brokers := ParseBrokers(brokersCSV)
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers in %q", brokersCSV)
	}
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("kafka: topic is required")
	}

	return newOrderEventsProducer(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           publishBatchTimeout,
	}), nil
}

func newOrderEventsProducer(writer messageWriter) *OrderEventsProducer {
	return &OrderEventsProducer{writer: writer}
}

// ParseBrokers splits a comma-separated broker list and drops blanks.
func ParseBrokers(brokersCSV string) []string {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (p *OrderEventsProducer) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	msg := events.NewOrderStatusChangedMessage(event)
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.RoutingKey())},
		},
	})
}

// Close flushes pending writes and releases connections.
func (p *OrderEventsProducer) Close() error {
	return p.writer.Close()
}
