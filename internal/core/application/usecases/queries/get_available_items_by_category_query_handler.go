package queries

import (
	"context"

	"kitchenboard/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// GetAvailableItemsByCategoryQueryHandler lists available item names within
// one category, matched case-insensitively.
type GetAvailableItemsByCategoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableItemsByCategoryQueryHandler creates a handler for category listings.
func NewGetAvailableItemsByCategoryQueryHandler(db *gorm.DB) GetAvailableItemsByCategoryQueryHandler {
	return GetAvailableItemsByCategoryQueryHandler{db: db}
}

// Handle returns available item names of the category in registry order.
// An unknown category yields an empty list, not an error.
func (h GetAvailableItemsByCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableItemsByCategoryQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanNames(ctx, h.db, `
		SELECT name
		FROM menu_items
		WHERE status = ? AND LOWER(category) = LOWER(?)
		ORDER BY seq
	`, menu.Available, query.Category())
}
