package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"kitchenboard/internal/core/domain/model/order"
	"kitchenboard/internal/core/domain/model/settings"
	"kitchenboard/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetDashboardMetricsQueryHandler loads every order row and folds it through
// the report calculator. Filtering happens in memory rather than SQL because
// intake dates are free-text strings with several formats; the calculator
// owns their parsing rules.
type GetDashboardMetricsQueryHandler struct {
	db         *gorm.DB
	calculator services.ReportCalculator
}

// NewGetDashboardMetricsQueryHandler creates a handler for the owner dashboard.
func NewGetDashboardMetricsQueryHandler(db *gorm.DB) GetDashboardMetricsQueryHandler {
	return GetDashboardMetricsQueryHandler{
		db:         db,
		calculator: services.NewReportCalculator(),
	}
}

// Handle resolves the reporting window from the stored settings, loads the
// order rows, and computes the metrics snapshot.
func (h GetDashboardMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardMetricsQuery,
) (GetDashboardMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	now := time.Now()

	stored, err := h.loadSettings(ctx, now)
	if err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	window := h.calculator.ResolveWindow(query.Period(), query.CustomRange(), stored.SemesterStart(), now)

	orders, err := h.loadOrders(ctx)
	if err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	return GetDashboardMetricsQueryResponse{
		Period:  query.Period(),
		Metrics: h.calculator.Calculate(orders, window),
		Settings: DashboardSettingsView{
			KitchenStatus:   string(stored.KitchenStatus()),
			SemesterStart:   stored.SemesterStart().Format("2006-01-02"),
			LowTierFee:      stored.LowTierFee(),
			LowTierPercent:  stored.LowTierPercent(),
			HighTierFee:     stored.HighTierFee(),
			HighTierPercent: stored.HighTierPercent(),
		},
	}, nil
}

func (h GetDashboardMetricsQueryHandler) loadSettings(ctx context.Context, now time.Time) (settings.Settings, error) {
	var (
		kitchenStatus   string
		semesterStart   sql.NullTime
		lowTierFee      float64
		lowTierPercent  float64
		highTierFee     float64
		highTierPercent float64
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			kitchen_status,
			semester_start,
			low_tier_fee,
			low_tier_percent,
			high_tier_fee,
			high_tier_percent
		FROM settings
		WHERE id = 1
	`).Row().Scan(
		&kitchenStatus,
		&semesterStart,
		&lowTierFee,
		&lowTierPercent,
		&highTierFee,
		&highTierPercent,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settings.Default(now), nil
		}
		return settings.Settings{}, err
	}

	status, err := settings.KitchenStatusFromString(kitchenStatus)
	if err != nil {
		status = settings.KitchenOpen
	}

	var start time.Time
	if semesterStart.Valid {
		start = semesterStart.Time
	}

	return settings.Restore(status, start, lowTierFee, lowTierPercent, highTierFee, highTierPercent, now), nil
}

func (h GetDashboardMetricsQueryHandler) loadOrders(ctx context.Context) ([]services.ReportOrder, error) {
	orders := make([]services.ReportOrder, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			order_date,
			order_time,
			customer_name,
			phone,
			items,
			quantity,
			amount,
			delivery_fee,
			total_amount,
			commission,
			delivery_option,
			delivery_zone,
			payment_method,
			status,
			notes,
			accepted_by
		FROM orders
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row services.ReportOrder
		var amount, deliveryFee, totalAmount, commission sql.NullFloat64
		var status int

		err = rows.Scan(
			&row.OrderID,
			&row.Date,
			&row.Time,
			&row.CustomerName,
			&row.Phone,
			&row.Items,
			&row.Quantity,
			&amount,
			&deliveryFee,
			&totalAmount,
			&commission,
			&row.DeliveryOption,
			&row.DeliveryZone,
			&row.PaymentMethod,
			&status,
			&row.Notes,
			&row.AcceptedBy,
		)
		if err != nil {
			return nil, err
		}

		row.Amount = amount.Float64
		row.DeliveryFee = deliveryFee.Float64
		row.TotalAmount = totalAmount.Float64
		row.Commission = commission.Float64
		row.Status = order.Status(status).String()

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
