package queries

import (
	"context"
	"database/sql"

	"kitchenboard/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckItemAvailabilityQueryHandler resolves a free-text item name against
// the registry using the fuzzy matching rules of the menu model.
type CheckItemAvailabilityQueryHandler struct {
	db *gorm.DB
}

// NewCheckItemAvailabilityQueryHandler creates a handler for availability checks.
func NewCheckItemAvailabilityQueryHandler(db *gorm.DB) CheckItemAvailabilityQueryHandler {
	return CheckItemAvailabilityQueryHandler{db: db}
}

// Handle scans the registry for a fuzzy match. The first matching row in
// registry order wins; no match reports the item as untracked and orderable.
func (h CheckItemAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckItemAvailabilityQuery,
) (CheckItemAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckItemAvailabilityQueryResponse{}, err
	}

	response := CheckItemAvailabilityQueryResponse{
		ItemName:  query.ItemName(),
		Status:    StatusNotTracked,
		Available: true,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, status
		FROM menu_items
		ORDER BY seq
	`).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var status int

		if err = rows.Scan(&name, &status); err != nil {
			return response, err
		}

		item, restoreErr := menu.RestoreItem(uuid.Nil, "", name, menu.ItemStatus(status), "", nil)
		if restoreErr != nil {
			continue
		}

		if item.Matches(query.ItemName()) {
			response.Status = item.Status().String()
			response.Available = item.IsAvailable()
			break
		}
	}

	if err = rows.Err(); err != nil {
		return response, err
	}

	return response, nil
}

// GetUnavailableItemsQueryHandler lists the names of out-of-stock items so
// the ordering flow can exclude them up front.
type GetUnavailableItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnavailableItemsQueryHandler creates a handler for the out-of-stock list.
func NewGetUnavailableItemsQueryHandler(db *gorm.DB) GetUnavailableItemsQueryHandler {
	return GetUnavailableItemsQueryHandler{db: db}
}

// Handle returns out-of-stock item names in registry order.
func (h GetUnavailableItemsQueryHandler) Handle(
	ctx context.Context,
	query GetUnavailableItemsQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanNames(ctx, h.db, `
		SELECT name
		FROM menu_items
		WHERE status = ?
		ORDER BY seq
	`, menu.OutOfStock)
}

func scanNames(ctx context.Context, db *gorm.DB, sqlText string, args ...any) ([]string, error) {
	names := make([]string, 0)

	rows, err := db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name sql.NullString
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name.String)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
