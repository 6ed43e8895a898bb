package order

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel wrapped by every InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the fulfillment state of an order.
//
// State transitions:
//
//	pending ──┬──> confirmed ──> shipped
//	          │
//	          └──> cancelled
//
// shipped and cancelled are terminal.
type Status int

const (
	// Unknown is the zero value and is never a legal order status.
	Unknown Status = iota

	// Pending is the initial status: the customer placed the order but nobody confirmed it.
	Pending

	// Confirmed means an operator accepted the order. Revenue is counted from here on.
	Confirmed

	// Shipped is the terminal success state.
	Shipped

	// Cancelled is the terminal failure state.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Confirmed: "confirmed",
	Shipped:   "shipped",
	Cancelled: "cancelled",
}

// transitions is the complete set of legal edges. Anything not listed is rejected.
var transitions = map[Status][]Status{
	Pending:   {Confirmed, Cancelled},
	Confirmed: {Shipped},
}

// AllStatuses returns every legal status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Shipped, Cancelled}
}

// ParseStatus converts the persisted or user-supplied name of a status.
// Matching ignores case and surrounding whitespace, so "Cancelled" parses as Cancelled.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, statusName := range statusNames {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the four legal statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case name used on the wire and in storage.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}

// CanTransitionTo reports whether s -> target is an edge of the state machine.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if s -> target is legal.
//
// Returns:
//   - (target, nil) on a legal edge
//   - (Unknown, *errs.ValueIsInvalidError) if target is not a legal status at all
//   - (Unknown, *InvalidTransitionError) for every other pair, including s == target
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// Confirm transitions pending -> confirmed.
func (s Status) Confirm() (Status, error) {
	return s.TransitionTo(Confirmed)
}

// Ship transitions confirmed -> shipped.
func (s Status) Ship() (Status, error) {
	return s.TransitionTo(Shipped)
}

// Cancel transitions pending -> cancelled.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}

// InvalidTransitionError reports a status change that is not an edge of the state machine.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError builds the error for the rejected from -> to pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move order from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
