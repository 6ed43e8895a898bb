package queries

import (
	"context"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"

	"golang.org/x/sync/errgroup"
)

// GetDashboardQueryHandler fetches the order set and the product count concurrently
// and aggregates them. If either fetch fails the whole query fails: there is no
// partial dashboard and no zero-filled fallback.
type GetDashboardQueryHandler struct {
	orders     OrderReader
	products   ProductCounter
	aggregator services.DashboardAggregator
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(orders OrderReader, products ProductCounter) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		orders:     orders,
		products:   products,
		aggregator: services.NewDashboardAggregator(),
	}
}

// Handle executes the dashboard query.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	var (
		orders        []*order.Order
		totalProducts int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = h.orders.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalProducts, err = h.products.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	dashboard, err := h.aggregator.Aggregate(orders, totalProducts)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return GetDashboardQueryResponse{
		TotalProducts: dashboard.TotalProducts,
		TotalOrders:   dashboard.TotalOrders,
		TotalRevenue:  dashboard.TotalRevenue,
		ActiveUsers:   dashboard.ActiveUsers,
	}, nil
}
