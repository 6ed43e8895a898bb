package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"backoffice/internal/adapters/out/events"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct{ mock.Mock }

func (m *mockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestOrderEventsPublisher_PublishStatusChanged(t *testing.T) {
	event := order.StatusChanged{
		EventID:       kernel.NewUUID(),
		OrderID:       kernel.NewUUID(),
		CustomerEmail: "jane@example.com",
		From:          order.Confirmed,
		To:            order.Shipped,
		OccurredAt:    time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	ch := new(mockChannel)
	var published amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, "backoffice.orders", "order.shipped", false, false, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(5).(amqp.Publishing) }).
		Return(nil).Once()

	err := newOrderEventsPublisher(ch, "backoffice.orders").PublishStatusChanged(t.Context(), event)

	require.NoError(t, err)
	ch.AssertExpectations(t)
	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.Equal(t, event.EventID.String(), published.MessageId)

	var body events.OrderStatusChangedMessage
	require.NoError(t, json.Unmarshal(published.Body, &body))
	assert.Equal(t, event.OrderID.String(), body.OrderID)
	assert.Equal(t, "confirmed", body.From)
	assert.Equal(t, "shipped", body.To)
}

func TestOrderEventsPublisher_PublishStatusChanged_ChannelError(t *testing.T) {
	ch := new(mockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(errors.New("channel closed")).Once()

	err := newOrderEventsPublisher(ch, "backoffice.orders").PublishStatusChanged(t.Context(), order.StatusChanged{
		EventID: kernel.NewUUID(),
		OrderID: kernel.NewUUID(),
		From:    order.Pending,
		To:      order.Confirmed,
	})

	require.Error(t, err)
}
