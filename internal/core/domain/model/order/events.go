package order

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// StatusChanged records one committed transition of an order.
type StatusChanged struct {
	EventID       kernel.UUID
	OrderID       kernel.UUID
	CustomerEmail string
	From          Status
	To            Status
	OccurredAt    time.Time
}

// NewStatusChanged describes the move of o from the given status to its current one.
// OccurredAt is the order's updatedAt, so the event carries the persisted timestamp.
func NewStatusChanged(o *Order, from Status) (StatusChanged, error) {
	if err := o.Validate(); err != nil {
		return StatusChanged{}, err
	}

	return StatusChanged{
		EventID:       kernel.NewUUID(),
		OrderID:       o.ID(),
		CustomerEmail: o.CustomerEmail(),
		From:          from,
		To:            o.Status(),
		OccurredAt:    o.UpdatedAt(),
	}, nil
}

// RoutingKey is the topic-style name of the event, e.g. "order.shipped".
func (e StatusChanged) RoutingKey() string {
	return "order." + e.To.String()
}
