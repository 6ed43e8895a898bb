package commands

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderItem is one requested product line.
type CreateOrderItem struct {
	ProductID string
	Name      string
	Price     kernel.Money
	Quantity  int
	Image     string
}

// CreateOrderCustomer holds the customer fields typed in at checkout.
type CreateOrderCustomer struct {
	Name            string
	Email           string
	ShippingAddress string
}

// CreateOrderCommand represents a request to record a new order.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("1499.99")
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(),
//	    CreateOrderCustomer{Name: "Jane", Email: "jane@example.com", ShippingAddress: "Moi Avenue 1"},
//	    []CreateOrderItem{{ProductID: "sku-1", Name: "Kettle", Price: price, Quantity: 1}},
//	    "QK12AB34",
//	    time.Now(),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customer        order.CustomerDetails
	items           []order.LineItem
	transactionCode string
	date            time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every field and reports all problems at once.
// The order date is required and is stored in UTC.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer CreateOrderCustomer,
	items []CreateOrderItem,
	transactionCode string,
	date time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		transactionCode: strings.TrimSpace(transactionCode),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setItems(items),
		cmd.setDate(date),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Customer() order.CustomerDetails {
	return c.customer
}

func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

func (c CreateOrderCommand) TransactionCode() string {
	return c.transactionCode
}

func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer CreateOrderCustomer) error {
	// Only the bare address is kept: it is the customer grouping key, so
	// "Jane <jane@example.com>" and "jane@example.com" must store the same value.
	email := strings.TrimSpace(customer.Email)
	if email != "" {
		parsed, err := mail.ParseAddress(email)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("customer email", err)
		}
		email = parsed.Address
	}

	details, err := order.NewCustomerDetails(
		strings.TrimSpace(customer.Name),
		email,
		strings.TrimSpace(customer.ShippingAddress),
	)
	if err != nil {
		return err
	}

	c.customer = details
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	lineItems := make([]order.LineItem, 0, len(items))
	itemErrs := make([]error, 0)
	for _, item := range items {
		lineItem, err := order.NewLineItem(item.ProductID, item.Name, item.Price, item.Quantity, item.Image)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		lineItems = append(lineItems, lineItem)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = lineItems
	return nil
}

func (c *CreateOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}

	c.date = date.UTC()
	return nil
}
