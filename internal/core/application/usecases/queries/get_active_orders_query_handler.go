package queries

import (
	"context"
	"database/sql"

	"kitchenboard/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves pending and in-progress orders from
// the database in intake order.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the kitchen work queue.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are bucketed by status; both buckets come
// back sorted by the intake sequence so the display matches arrival order.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) (GetActiveOrdersQueryResponse, error) {
	response := GetActiveOrdersQueryResponse{
		Pending: make([]ActiveOrderView, 0),
		Cooking: make([]ActiveOrderView, 0),
	}

	if err := query.Validate(); err != nil {
		return response, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			customer_name,
			phone,
			items,
			quantity,
			amount,
			delivery_fee,
			total_amount,
			delivery_option,
			delivery_zone,
			payment_method,
			notes,
			order_time,
			status,
			accepted_by
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY seq
	`, order.Pending, order.InProgress).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	for rows.Next() {
		var view ActiveOrderView
		var amount, deliveryFee, totalAmount sql.NullFloat64
		var status int

		err = rows.Scan(
			&view.OrderID,
			&view.CustomerName,
			&view.Phone,
			&view.Items,
			&view.Quantity,
			&amount,
			&deliveryFee,
			&totalAmount,
			&view.DeliveryOption,
			&view.DeliveryZone,
			&view.PaymentMethod,
			&view.Notes,
			&view.OrderTime,
			&status,
			&view.AcceptedBy,
		)
		if err != nil {
			return response, err
		}

		view.TotalAmount = totalAmount.Float64
		if view.TotalAmount == 0 {
			view.TotalAmount = amount.Float64 + deliveryFee.Float64
		}

		if order.Status(status) == order.Pending {
			view.AcceptedBy = ""
			response.Pending = append(response.Pending, view)
		} else {
			response.Cooking = append(response.Cooking, view)
		}
	}

	if err = rows.Err(); err != nil {
		return response, err
	}

	return response, nil
}
