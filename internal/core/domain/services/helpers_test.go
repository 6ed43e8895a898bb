package services_test

import (
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

var baseDate = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// orderSpec describes an order compactly; every field is exported so gopter can
// generate it with gen.Struct.
type orderSpec struct {
	Email      int
	Status     int
	Total      int64
	DateOffset int
}

func emailOf(i int) string {
	return fmt.Sprintf("customer%d@example.com", i)
}

// restoreOrder builds an order with an explicit status and total. It panics on invalid
// input because every caller passes well-formed data.
func restoreOrder(id kernel.UUID, email, name string, status order.Status, total kernel.Money, date, created time.Time) *order.Order {
	customer, err := order.NewCustomerDetails(name, email, "Kenyatta Avenue 7")
	if err != nil {
		panic(err)
	}
	item, err := order.NewLineItem("sku-1", "Item", total, 1, "")
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(id, customer, []order.LineItem{item}, total, status, "TX", date, created, created)
	if err != nil {
		panic(err)
	}
	return o
}

func newOrder(email string, status order.Status, total int64) *order.Order {
	return restoreOrder(kernel.NewUUID(), email, "Name of "+email, status, money(total), baseDate, baseDate)
}

func buildOrders(specs []orderSpec) []*order.Order {
	statuses := order.AllStatuses()
	orders := make([]*order.Order, 0, len(specs))
	for i, spec := range specs {
		date := baseDate.Add(time.Duration(spec.DateOffset) * time.Hour)
		created := baseDate.Add(time.Duration(i) * time.Second)
		orders = append(orders, restoreOrder(
			kernel.NewUUID(),
			emailOf(spec.Email),
			fmt.Sprintf("Name %d", i),
			statuses[spec.Status],
			money(spec.Total),
			date,
			created,
		))
	}
	return orders
}

func money(amount int64) kernel.Money {
	m, err := kernel.MoneyFromInt(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func moneyOf(amount string) kernel.Money {
	m, err := kernel.MoneyFromString(amount)
	if err != nil {
		panic(err)
	}
	return m
}
