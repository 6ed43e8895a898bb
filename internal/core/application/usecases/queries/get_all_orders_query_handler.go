package queries

import (
	"context"
	"slices"

	"backoffice/internal/core/domain/model/order"
)

// GetAllOrdersQueryHandler lists orders newest first.
type GetAllOrdersQueryHandler struct {
	orders OrderReader
}

// NewGetAllOrdersQueryHandler creates a handler for order listing.
func NewGetAllOrdersQueryHandler(orders OrderReader) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle returns the orders sorted with Order.IsLaterThan, so equal dates still
// come back in a stable order.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b *order.Order) int {
		switch {
		case a.IsLaterThan(b):
			return -1
		case b.IsLaterThan(a):
			return 1
		default:
			return 0
		}
	})

	return sorted, nil
}
