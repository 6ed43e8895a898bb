package queries

import (
	"context"

	"backoffice/internal/core/domain/services"
)

// GetCustomersQueryHandler projects customers from a fresh order snapshot on every call.
type GetCustomersQueryHandler struct {
	orders    OrderReader
	projector services.CustomerProjector
}

// NewGetCustomersQueryHandler creates a handler for customer queries.
func NewGetCustomersQueryHandler(orders OrderReader) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{
		orders:    orders,
		projector: services.NewCustomerProjector(),
	}
}

// Handle returns one row per distinct customer email, sorted by email.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := h.projector.Project(orders)
	if err != nil {
		return nil, err
	}

	rows := make([]GetCustomersQueryResponse, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, GetCustomersQueryResponse{
			Email:           c.Email(),
			Name:            c.Name(),
			OrderCount:      c.OrderCount(),
			TotalSpent:      c.TotalSpent(),
			LatestOrderDate: c.LatestOrderDate(),
			LatestOrderID:   c.LatestOrderID(),
		})
	}

	return rows, nil
}
