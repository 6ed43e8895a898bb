// Package services provides the read-side domain services of the back-office.
// They are pure functions over an order snapshot: nothing here performs I/O,
// holds state between calls or mutates an order.
//
// The package includes:
//   - DashboardAggregator: totals for the operator dashboard, using order.IsRevenueCounted
//   - CustomerProjector: one Customer rollup per distinct email, using
//     order.IsSuccessfulForCustomerCount
package services
