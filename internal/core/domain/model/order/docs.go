// Package order provides the Order aggregate of the back-office and the rules that
// govern its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding customer details, line items, the authoritative
//     total and the mutable status
//   - Status: the fulfillment state machine, encoded as an explicit transition table
//   - IsRevenueCounted / IsSuccessfulForCustomerCount: the two validity predicates used
//     by the dashboard and the customer projection respectively
//
// Key business rules:
//   - Orders are created pending and only their status changes afterwards
//   - Legal transitions: pending -> confirmed, pending -> cancelled, confirmed -> shipped
//   - shipped and cancelled are terminal
//   - An illegal transition returns *InvalidTransitionError and leaves the order untouched
//   - total is computed once from the items and never recomputed
package order
