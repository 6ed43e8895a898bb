// Package queries contains read-only operations over the order set.
// Handlers fetch a snapshot once per request and compute views from it; they never
// mutate orders and never fall back to default values when a fetch fails.
package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

type (
	// OrderReader is the read side of the order store.
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		GetAll(ctx context.Context) ([]*order.Order, error)
	}

	// ProductCounter is the read side of the product catalog.
	ProductCounter interface {
		Count(ctx context.Context) (int64, error)
	}
)
