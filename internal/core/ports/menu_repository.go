package ports

import (
	"context"

	"kitchenboard/internal/core/domain/model/menu"
)

// MenuRepository provides persistence operations for menu availability items.
type MenuRepository interface {
	// GetAll retrieves every menu item in insertion order.
	GetAll(ctx context.Context) ([]*menu.Item, error)

	// GetByName retrieves an item by exact name match.
	// Returns errs.ObjectNotFoundError when no such item exists.
	GetByName(ctx context.Context, name string) (*menu.Item, error)

	// Update persists a status change of an existing item.
	Update(ctx context.Context, item *menu.Item) error
}
