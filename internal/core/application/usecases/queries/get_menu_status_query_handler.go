package queries

import (
	"context"
	"database/sql"

	"kitchenboard/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// GetMenuStatusQueryHandler retrieves all menu items in registry order.
type GetMenuStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuStatusQueryHandler creates a handler for the availability registry.
func NewGetMenuStatusQueryHandler(db *gorm.DB) GetMenuStatusQueryHandler {
	return GetMenuStatusQueryHandler{db: db}
}

// Handle executes the query.
func (h GetMenuStatusQueryHandler) Handle(
	ctx context.Context,
	query GetMenuStatusQuery,
) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]MenuItemView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category,
			name,
			status,
			updated_by,
			updated_at
		FROM menu_items
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view MenuItemView
		var status int
		var updatedAt sql.NullTime

		err = rows.Scan(
			&view.Category,
			&view.Name,
			&status,
			&view.UpdatedBy,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		view.Status = menu.ItemStatus(status).String()
		if updatedAt.Valid {
			view.LastUpdated = updatedAt.Time.Format("Jan 2, 3:04 PM")
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
