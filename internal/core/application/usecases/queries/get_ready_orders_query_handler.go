package queries

import (
	"context"
	"database/sql"

	"kitchenboard/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetReadyOrdersQueryHandler retrieves ready, uncleared orders from the
// database in the order they became ready.
type GetReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyOrdersQueryHandler creates a handler for the pickup board.
func NewGetReadyOrdersQueryHandler(db *gorm.DB) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{db: db}
}

// Handle executes the query. Cleared orders stay in the table but never
// reappear on the board.
func (h GetReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReadyOrdersQuery,
) ([]ReadyOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]ReadyOrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			customer_name,
			phone,
			items,
			delivery_option,
			delivery_zone,
			amount,
			ready_at
		FROM orders
		WHERE status = ? AND cleared_at IS NULL
		ORDER BY ready_at
	`, order.Ready).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view ReadyOrderView
		var amount sql.NullFloat64
		var readyAt sql.NullTime

		err = rows.Scan(
			&view.OrderID,
			&view.CustomerName,
			&view.Phone,
			&view.Items,
			&view.DeliveryOption,
			&view.DeliveryZone,
			&amount,
			&readyAt,
		)
		if err != nil {
			return nil, err
		}

		view.Amount = amount.Float64
		if readyAt.Valid {
			view.ReadyAt = readyAt.Time.Format("15:04")
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
