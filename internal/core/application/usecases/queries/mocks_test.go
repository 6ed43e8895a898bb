package queries_test

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockProductCounter struct{ mock.Mock }

func (m *MockProductCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var baseDate = time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

func money(amount int64) kernel.Money {
	m, err := kernel.MoneyFromInt(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func makeOrder(email string, status order.Status, total int64, date time.Time) *order.Order {
	customer, err := order.NewCustomerDetails("Name of "+email, email, "Moi Avenue 1")
	if err != nil {
		panic(err)
	}
	item, err := order.NewLineItem("sku-1", "Item", money(total), 1, "")
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), customer, []order.LineItem{item}, money(total),
		status, "TX", date, date, date)
	if err != nil {
		panic(err)
	}
	return o
}

func scenarioOrders() []*order.Order {
	return []*order.Order{
		makeOrder("jane@example.com", order.Pending, 100, baseDate),
		makeOrder("jane@example.com", order.Confirmed, 200, baseDate.Add(time.Hour)),
		makeOrder("jane@example.com", order.Shipped, 300, baseDate.Add(2*time.Hour)),
		makeOrder("jane@example.com", order.Cancelled, 400, baseDate.Add(3*time.Hour)),
	}
}
