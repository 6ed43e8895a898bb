package order

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned for a LineItem not built by NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product line of an order, captured at the price the customer paid.
type LineItem struct {
	productID string
	name      string
	price     kernel.Money
	quantity  int
	image     string

	guard guard.ConstructorGuard
}

// NewLineItem validates and builds a line item. productID and name are required,
// price must be a valid non-negative amount and quantity at least 1. image is optional.
func NewLineItem(productID, name string, price kernel.Money, quantity int, image string) (LineItem, error) {
	item := LineItem{
		image: image,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i LineItem) ProductID() string {
	return i.productID
}

func (i LineItem) Name() string {
	return i.name
}

func (i LineItem) Price() kernel.Money {
	return i.price
}

func (i LineItem) Quantity() int {
	return i.quantity
}

func (i LineItem) Image() string {
	return i.image
}

// Subtotal is price times quantity.
func (i LineItem) Subtotal() kernel.Money {
	return i.price.Times(i.quantity)
}

func (i *LineItem) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return errs.NewValueIsRequiredError("item product id")
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
