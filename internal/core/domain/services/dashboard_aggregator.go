package services

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
)

// Dashboard is the operator dashboard: four independent totals sharing one shape.
type Dashboard struct {
	// TotalProducts comes from the product catalog, not from orders.
	TotalProducts int64

	// TotalOrders counts revenue-counted orders.
	TotalOrders int

	// TotalRevenue sums the total of revenue-counted orders. Zero when none qualify.
	TotalRevenue kernel.Money

	// ActiveUsers counts distinct customer emails among revenue-counted orders.
	ActiveUsers int
}

// DashboardAggregator computes Dashboard values from an order snapshot.
//
// Only confirmed and shipped orders participate (see order.IsRevenueCounted).
// Totals are exact sums of Order.Total; items are never re-priced.
//
// Example usage:
//
//	orders, err := repo.GetAll(ctx)
//	if err != nil {
//	    return err // never render a zero dashboard on a failed read
//	}
//	dashboard, err := services.NewDashboardAggregator().Aggregate(orders, productCount)
type DashboardAggregator struct{}

// NewDashboardAggregator creates a new DashboardAggregator instance.
func NewDashboardAggregator() DashboardAggregator {
	return DashboardAggregator{}
}

// Aggregate scans orders once and returns the dashboard.
//
// Returns:
//   - Dashboard with zero totals if no order qualifies
//   - error if totalProducts is negative or any order was not properly constructed
func (a DashboardAggregator) Aggregate(orders []*order.Order, totalProducts int64) (Dashboard, error) {
	if totalProducts < 0 {
		return Dashboard{}, errs.NewValueIsOutOfRangeError("total products", totalProducts, 0, "unbounded")
	}

	var (
		totalOrders int
		revenue     = kernel.ZeroMoney()
		emails      = make(map[string]struct{})
	)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return Dashboard{}, err
		}

		if !order.IsRevenueCounted(o.Status()) {
			continue
		}

		totalOrders++
		revenue = revenue.Add(o.Total())
		emails[o.CustomerEmail()] = struct{}{}
	}

	return Dashboard{
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalRevenue:  revenue,
		ActiveUsers:   len(emails),
	}, nil
}
