// Package events holds the wire form of order events shared by every publisher.
package events

import (
	"time"

	"backoffice/internal/core/domain/model/order"
)

// OrderStatusChangedMessage is the JSON body of an order.StatusChanged event.
type OrderStatusChangedMessage struct {
	EventID       string    `json:"eventId"`
	OrderID       string    `json:"orderId"`
	CustomerEmail string    `json:"customerEmail"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewOrderStatusChangedMessage maps the domain event onto its wire form.
func NewOrderStatusChangedMessage(event order.StatusChanged) OrderStatusChangedMessage {
	return OrderStatusChangedMessage{
		EventID:       event.EventID.String(),
		OrderID:       event.OrderID.String(),
		CustomerEmail: event.CustomerEmail,
		From:          event.From.String(),
		To:            event.To.String(),
		OccurredAt:    event.OccurredAt.UTC(),
	}
}
