package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
)

// GetDashboardQuery retrieves the operator dashboard totals.
//
// Example:
//
//	handler := NewGetDashboardQueryHandler(orderRepo, productRepo)
//	dashboard, err := handler.Handle(ctx, NewGetDashboardQuery())
//	if err != nil {
//	    return fmt.Errorf("dashboard unavailable: %w", err)
//	}
//	fmt.Printf("revenue %s from %d orders\n", dashboard.TotalRevenue, dashboard.TotalOrders)
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a parameterless dashboard query.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse holds the four dashboard figures.
type GetDashboardQueryResponse struct {
	TotalProducts int64
	TotalOrders   int
	TotalRevenue  kernel.Money
	ActiveUsers   int
}
