// Package ports defines the contracts between the back-office core and its infrastructure.
package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations wrap connectivity failures in errs.StoreUnavailableError.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order, newest first by order date.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// UpdateStatus writes the aggregate's current status and updatedAt, but only if the
	// stored status still equals expected. The check and the write are one statement.
	//
	// Returns errs.ObjectNotFoundError when the order does not exist and
	// errs.ConflictError when another writer changed the status first.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
