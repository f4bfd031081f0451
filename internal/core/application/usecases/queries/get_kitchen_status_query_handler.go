package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchenboard/internal/core/domain/model/settings"

	"gorm.io/gorm"
)

// GetKitchenStatusQueryHandler reads the kitchen flag from the settings row.
// A missing row or blank flag reports the kitchen as open.
type GetKitchenStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenStatusQueryHandler creates a handler for the kitchen flag.
func NewGetKitchenStatusQueryHandler(db *gorm.DB) GetKitchenStatusQueryHandler {
	return GetKitchenStatusQueryHandler{db: db}
}

// Handle executes the query.
func (h GetKitchenStatusQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenStatusQuery,
) (GetKitchenStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetKitchenStatusQueryResponse{}, err
	}

	var stored string
	err := h.db.WithContext(ctx).
		Raw(`SELECT kitchen_status FROM settings WHERE id = 1`).
		Row().
		Scan(&stored)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return GetKitchenStatusQueryResponse{}, err
	}

	status, err := settings.KitchenStatusFromString(stored)
	if err != nil {
		status = settings.KitchenOpen
	}

	return GetKitchenStatusQueryResponse{Status: string(status)}, nil
}
