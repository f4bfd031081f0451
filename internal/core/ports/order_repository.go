// Package ports defines the interfaces between the application core and the
// outside world: repositories, the unit of work, and the outbound notifier.
package ports

import (
	"context"
	"errors"

	"kitchenboard/internal/core/domain/model/order"
)

// ErrDuplicateOrder is returned by Add when a row with the same order
// identifier already exists. The intake feed uses it to skip rows it has
// already imported.
var ErrDuplicateOrder = errors.New("order already exists")

// OrderRepository provides persistence operations for the Order aggregate.
// Rows are never deleted; clearing is a timestamp update.
type OrderRepository interface {
	// Add saves a newly imported order. Returns ErrDuplicateOrder when the
	// identifier is already present.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists lifecycle changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its external identifier.
	Get(ctx context.Context, orderID string) (*order.Order, error)

	// GetAllReadyUncleared retrieves orders in Ready status that have not
	// been soft-cleared, in insertion order.
	GetAllReadyUncleared(ctx context.Context) ([]*order.Order, error)
}
