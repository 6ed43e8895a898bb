package order

import (
	"errors"
	"strings"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrCustomerDetailsIsNotConstructed is returned for CustomerDetails not built by NewCustomerDetails.
var ErrCustomerDetailsIsNotConstructed = errors.New("CustomerDetails must be created via NewCustomerDetails constructor")

// CustomerDetails is the customer snapshot stored on an order. The email is the
// customer's natural key; the name is only a display label and may differ between
// orders placed with the same email.
type CustomerDetails struct {
	name            string
	email           string
	shippingAddress string

	guard guard.ConstructorGuard
}

// NewCustomerDetails requires a non-blank name and email. The email is kept verbatim
// because grouping compares it exactly.
func NewCustomerDetails(name, email, shippingAddress string) (CustomerDetails, error) {
	details := CustomerDetails{
		shippingAddress: shippingAddress,
		guard:           guard.NewConstructorGuard(),
	}

	var errName, errEmail error
	if strings.TrimSpace(name) == "" {
		errName = errs.NewValueIsRequiredError("customer name")
	}
	if strings.TrimSpace(email) == "" {
		errEmail = errs.NewValueIsRequiredError("customer email")
	}
	if err := errors.Join(errName, errEmail); err != nil {
		return CustomerDetails{}, err
	}

	details.name = name
	details.email = email
	return details, nil
}

// Validate ensures the value was created through NewCustomerDetails.
func (c CustomerDetails) Validate() error {
	return c.guard.Validate(ErrCustomerDetailsIsNotConstructed)
}

func (c CustomerDetails) Name() string {
	return c.name
}

func (c CustomerDetails) Email() string {
	return c.email
}

func (c CustomerDetails) ShippingAddress() string {
	return c.shippingAddress
}
