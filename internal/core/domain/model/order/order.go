package order

import (
	"errors"
	"slices"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a single customer purchase. It is the aggregate root of the back-office:
// everything except the status is fixed at creation.
//
// Order follows these invariants:
//   - id is a valid UUID and never reused
//   - the customer email is never blank
//   - items is non-empty and total equals the sum of item subtotals at creation
//   - status is always one of the four legal statuses and only changes along
//     the edges of the Status state machine
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer holds name, email and shipping address as entered for this order
	customer CustomerDetails

	// items are the purchased product lines
	items []LineItem

	// total is authoritative; aggregations trust it rather than the items
	total kernel.Money

	// status is the current fulfillment state
	status Status

	// transactionCode is the payment reference, stored verbatim and never interpreted
	transactionCode string

	// date is the business date of the order, used for recency
	date time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a pending order. The total is computed once from items.
//
// Example:
//
//	customer, _ := order.NewCustomerDetails("Jane", "jane@example.com", "Moi Avenue 1")
//	price, _ := kernel.MoneyFromInt(1500)
//	item, _ := order.NewLineItem("sku-1", "Kettle", price, 2, "")
//	o, err := order.NewOrder(kernel.NewUUID(), customer, []order.LineItem{item}, "QK12AB", time.Now(), time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customer CustomerDetails,
	items []LineItem,
	transactionCode string,
	date time.Time,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:          Pending,
		transactionCode: transactionCode,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
		o.setDate(date),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. The stored total is kept as-is
// and the stored status is validated but not replayed through the state machine.
func RestoreOrder(
	id kernel.UUID,
	customer CustomerDetails,
	items []LineItem,
	total kernel.Money,
	status Status,
	transactionCode string,
	date, createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		transactionCode: transactionCode,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
		o.setTotal(total),
		o.setStatus(status),
		o.setDate(date),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() CustomerDetails {
	return o.customer
}

// CustomerEmail is a shortcut for Customer().Email(), the customer grouping key.
func (o *Order) CustomerEmail() string {
	return o.customer.Email()
}

// Items returns a copy of the order lines.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) TransactionCode() string {
	return o.transactionCode
}

func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Confirm moves a pending order to confirmed.
func (o *Order) Confirm(at time.Time) error {
	return o.ChangeStatus(Confirmed, at)
}

// Ship moves a confirmed order to shipped.
func (o *Order) Ship(at time.Time) error {
	return o.ChangeStatus(Shipped, at)
}

// Cancel moves a pending order to cancelled.
func (o *Order) Cancel(at time.Time) error {
	return o.ChangeStatus(Cancelled, at)
}

// ChangeStatus applies the transition to target and stamps updatedAt.
// On error the order is left exactly as it was. date, total and items are never touched.
func (o *Order) ChangeStatus(target Status, at time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = at
	return nil
}

// IsLaterThan reports whether o is the more recent of two orders: the later date wins,
// then the later createdAt, then the greater id. The ordering is total, so picking the
// latest order of a customer never depends on iteration order.
func (o *Order) IsLaterThan(other *Order) bool {
	if !o.date.Equal(other.date) {
		return o.date.After(other.date)
	}
	if !o.createdAt.Equal(other.createdAt) {
		return o.createdAt.After(other.createdAt)
	}
	return o.id.Compare(other.id) > 0
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer CustomerDetails) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.date = date
	return nil
}
