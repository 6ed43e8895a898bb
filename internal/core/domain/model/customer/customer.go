package customer

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned for a Customer not built by NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer summarises every order placed with one email address.
type Customer struct {
	email           string
	name            string
	orderCount      int
	totalSpent      kernel.Money
	latestOrderDate time.Time
	latestOrderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomer builds a rollup. name and latestOrderDate come from the customer's latest
// order; orderCount and totalSpent only include orders that count for the customer.
func NewCustomer(
	email, name string,
	orderCount int,
	totalSpent kernel.Money,
	latestOrderDate time.Time,
	latestOrderID kernel.UUID,
) (Customer, error) {
	if email == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer email")
	}
	if orderCount < 0 {
		return Customer{}, errs.NewValueIsOutOfRangeError("order count", orderCount, 0, "unbounded")
	}
	if err := errors.Join(totalSpent.Validate(), latestOrderID.Validate()); err != nil {
		return Customer{}, err
	}

	return Customer{
		email:           email,
		name:            name,
		orderCount:      orderCount,
		totalSpent:      totalSpent,
		latestOrderDate: latestOrderDate,
		latestOrderID:   latestOrderID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Email is the customer's natural key.
func (c Customer) Email() string {
	return c.email
}

// Name is the display name of the latest order.
func (c Customer) Name() string {
	return c.name
}

func (c Customer) OrderCount() int {
	return c.orderCount
}

func (c Customer) TotalSpent() kernel.Money {
	return c.totalSpent
}

func (c Customer) LatestOrderDate() time.Time {
	return c.latestOrderDate
}

// LatestOrderID identifies the order name and LatestOrderDate were taken from.
func (c Customer) LatestOrderID() kernel.UUID {
	return c.latestOrderID
}
