package services

import (
	"slices"
	"strings"

	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// CustomerProjector derives customers from orders. There is no customer table:
// every distinct email seen on any order, whatever its status, becomes one Customer.
//
// Per email:
//   - name and latest order date come from the latest order (Order.IsLaterThan),
//     all statuses considered
//   - order count and total spent include every order except cancelled ones
//     (order.IsSuccessfulForCustomerCount), so pending orders do count here
//     even though the dashboard ignores them
//
// A customer whose only orders are cancelled still appears, with zero count and spend.
type CustomerProjector struct{}

// NewCustomerProjector creates a new CustomerProjector instance.
func NewCustomerProjector() CustomerProjector {
	return CustomerProjector{}
}

type customerAccumulator struct {
	latest     *order.Order
	orderCount int
	totalSpent kernel.Money
}

// Project groups orders by customer email. The result is sorted by email so that
// repeated calls over the same snapshot return identical slices.
func (p CustomerProjector) Project(orders []*order.Order) ([]customer.Customer, error) {
	groups := make(map[string]*customerAccumulator)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		acc, ok := groups[o.CustomerEmail()]
		if !ok {
			acc = &customerAccumulator{latest: o, totalSpent: kernel.ZeroMoney()}
			groups[o.CustomerEmail()] = acc
		} else if o.IsLaterThan(acc.latest) {
			acc.latest = o
		}

		if order.IsSuccessfulForCustomerCount(o.Status()) {
			acc.orderCount++
			acc.totalSpent = acc.totalSpent.Add(o.Total())
		}
	}

	customers := make([]customer.Customer, 0, len(groups))
	for email, acc := range groups {
		c, err := customer.NewCustomer(
			email,
			acc.latest.Customer().Name(),
			acc.orderCount,
			acc.totalSpent,
			acc.latest.Date(),
			acc.latest.ID(),
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	slices.SortFunc(customers, func(a, b customer.Customer) int {
		return strings.Compare(a.Email(), b.Email())
	})

	return customers, nil
}
