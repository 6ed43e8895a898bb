package ports

import (
	"context"

	"backoffice/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes so that read models and
// dashboards can invalidate and re-query.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChanged) error
}
