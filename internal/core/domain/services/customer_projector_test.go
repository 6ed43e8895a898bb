package services_test

import (
	"slices"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCustomer(t *testing.T, customers []customer.Customer, email string) customer.Customer {
	t.Helper()
	idx := slices.IndexFunc(customers, func(c customer.Customer) bool { return c.Email() == email })
	require.NotEqual(t, -1, idx, "customer %s not projected", email)
	return customers[idx]
}

func TestCustomerProjector_Project(t *testing.T) {
	projector := services.NewCustomerProjector()

	t.Run("pending counted, cancelled excluded", func(t *testing.T) {
		orders := []*order.Order{
			newOrder("jane@example.com", order.Pending, 100),
			newOrder("jane@example.com", order.Cancelled, 50),
		}

		customers, err := projector.Project(orders)

		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, 1, customers[0].OrderCount())
		assert.True(t, customers[0].TotalSpent().IsEqual(money(100)))
	})

	t.Run("customer with only a cancelled order still appears", func(t *testing.T) {
		cancelled := restoreOrder(kernel.NewUUID(), "gone@example.com", "Gone", order.Cancelled, money(200),
			baseDate.Add(48*time.Hour), baseDate)

		customers, err := projector.Project([]*order.Order{cancelled})

		require.NoError(t, err)
		require.Len(t, customers, 1)
		c := customers[0]
		assert.Equal(t, "gone@example.com", c.Email())
		assert.Equal(t, "Gone", c.Name())
		assert.Zero(t, c.OrderCount())
		assert.True(t, c.TotalSpent().IsZero())
		assert.Equal(t, baseDate.Add(48*time.Hour), c.LatestOrderDate())
		assert.True(t, c.LatestOrderID().IsEqual(cancelled.ID()))
	})

	t.Run("end to end scenario", func(t *testing.T) {
		orders := []*order.Order{
			newOrder("jane@example.com", order.Pending, 100),
			newOrder("jane@example.com", order.Confirmed, 200),
			newOrder("jane@example.com", order.Shipped, 300),
			newOrder("jane@example.com", order.Cancelled, 400),
		}

		customers, err := projector.Project(orders)
		require.NoError(t, err)
		dashboard, err := services.NewDashboardAggregator().Aggregate(orders, 0)
		require.NoError(t, err)

		require.Len(t, customers, 1)
		assert.Equal(t, 3, customers[0].OrderCount())
		assert.True(t, customers[0].TotalSpent().IsEqual(money(600)))
		assert.Equal(t, 2, dashboard.TotalOrders)
		assert.True(t, dashboard.TotalRevenue.IsEqual(money(500)))
		assert.Equal(t, 1, dashboard.ActiveUsers)
	})

	t.Run("latest order supplies name and date across all statuses", func(t *testing.T) {
		orders := []*order.Order{
			restoreOrder(kernel.NewUUID(), "jane@example.com", "Jane", order.Shipped, money(10),
				baseDate, baseDate),
			restoreOrder(kernel.NewUUID(), "jane@example.com", "Jane Doe", order.Cancelled, money(10),
				baseDate.Add(72*time.Hour), baseDate),
			restoreOrder(kernel.NewUUID(), "jane@example.com", "J. Doe", order.Pending, money(10),
				baseDate.Add(24*time.Hour), baseDate.Add(time.Hour)),
		}

		customers, err := projector.Project(orders)

		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Jane Doe", customers[0].Name())
		assert.Equal(t, baseDate.Add(72*time.Hour), customers[0].LatestOrderDate())
		assert.Equal(t, 2, customers[0].OrderCount())
	})

	t.Run("tie on date is broken deterministically", func(t *testing.T) {
		lowID, err := kernel.UUIDFromString("00000000-0000-4000-8000-000000000001")
		require.NoError(t, err)
		highID, err := kernel.UUIDFromString("00000000-0000-4000-8000-000000000002")
		require.NoError(t, err)

		a := restoreOrder(lowID, "jane@example.com", "Name A", order.Pending, money(1), baseDate, baseDate)
		b := restoreOrder(highID, "jane@example.com", "Name B", order.Pending, money(1), baseDate, baseDate)

		for _, orders := range [][]*order.Order{{a, b}, {b, a}} {
			customers, err := projector.Project(orders)

			require.NoError(t, err)
			assert.Equal(t, "Name B", customers[0].Name())
			assert.True(t, customers[0].LatestOrderID().IsEqual(highID))
		}
	})

	t.Run("tie on date prefers the most recently created record", func(t *testing.T) {
		older := restoreOrder(kernel.NewUUID(), "jane@example.com", "Old", order.Pending, money(1),
			baseDate, baseDate)
		newer := restoreOrder(kernel.NewUUID(), "jane@example.com", "New", order.Pending, money(1),
			baseDate, baseDate.Add(time.Minute))

		customers, err := projector.Project([]*order.Order{newer, older})

		require.NoError(t, err)
		assert.Equal(t, "New", customers[0].Name())
	})

	t.Run("one customer per distinct email sorted by email", func(t *testing.T) {
		orders := []*order.Order{
			newOrder("zed@example.com", order.Confirmed, 1),
			newOrder("amy@example.com", order.Cancelled, 1),
			newOrder("zed@example.com", order.Pending, 1),
			newOrder("bob@example.com", order.Shipped, 1),
		}

		customers, err := projector.Project(orders)

		require.NoError(t, err)
		emails := make([]string, 0, len(customers))
		for _, c := range customers {
			emails = append(emails, c.Email())
		}
		assert.Equal(t, []string{"amy@example.com", "bob@example.com", "zed@example.com"}, emails)
		assert.Equal(t, 2, findCustomer(t, customers, "zed@example.com").OrderCount())
	})

	t.Run("empty order set yields no customers", func(t *testing.T) {
		customers, err := projector.Project(nil)

		require.NoError(t, err)
		assert.Empty(t, customers)
	})

	t.Run("should fail on an unconstructed order", func(t *testing.T) {
		_, err := projector.Project([]*order.Order{newOrder("a@example.com", order.Pending, 1), {}})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
