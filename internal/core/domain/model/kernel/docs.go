// Package kernel provides the shared value objects of the back-office domain.
//
// The package includes:
//   - UUID: identifier for orders and events, wrapping github.com/google/uuid
//   - Money: a non-negative monetary amount backed by github.com/shopspring/decimal
//
// Both are immutable and safe for concurrent use. Their zero values are invalid
// and are rejected by Validate, so a forgotten constructor call surfaces early.
package kernel
