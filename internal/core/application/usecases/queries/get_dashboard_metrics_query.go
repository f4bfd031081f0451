package queries

import (
	"errors"

	"kitchenboard/internal/core/domain/services"
	"kitchenboard/internal/pkg/guard"
)

var ErrGetDashboardMetricsQueryIsNotConstructed = errors.New(
	"GetDashboardMetricsQuery must be created via NewGetDashboardMetricsQuery constructor",
)

// GetDashboardMetricsQuery retrieves the owner dashboard snapshot for one
// reporting window.
//
// Example:
//
//	query := NewGetDashboardMetricsQuery("week", "", "")
//	handler := NewGetDashboardMetricsQueryHandler(db)
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get dashboard metrics: %w", err)
//	}
//
//	fmt.Printf("sales: %s over %d orders\n",
//	    snapshot.Metrics.TotalSales, snapshot.Metrics.TotalOrders)
type GetDashboardMetricsQuery struct {
	period    string
	startDate string
	endDate   string

	guard guard.ConstructorGuard
}

// NewGetDashboardMetricsQuery creates a dashboard query. An unrecognized
// period falls back to today; start and end dates matter only for the custom
// period and arrive as YYYY-MM-DD strings.
func NewGetDashboardMetricsQuery(period, startDate, endDate string) GetDashboardMetricsQuery {
	if period == "" {
		period = services.PeriodToday
	}

	return GetDashboardMetricsQuery{
		period:    period,
		startDate: startDate,
		endDate:   endDate,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardMetricsQueryIsNotConstructed)
}

// Period returns the requested reporting period.
func (q GetDashboardMetricsQuery) Period() string {
	return q.period
}

// CustomRange returns the custom window bounds, or nil when either is absent.
func (q GetDashboardMetricsQuery) CustomRange() *services.CustomRange {
	if q.startDate == "" || q.endDate == "" {
		return nil
	}
	return &services.CustomRange{Start: q.startDate, End: q.endDate}
}

// DashboardSettingsView exposes the tier parameters and kitchen flag
// alongside the metrics so the dashboard can render its settings panel.
type DashboardSettingsView struct {
	KitchenStatus   string  `json:"kitchenStatus"`
	SemesterStart   string  `json:"semesterStart"`
	LowTierFee      float64 `json:"lowTierFee"`
	LowTierPercent  float64 `json:"lowTierPercent"`
	HighTierFee     float64 `json:"highTierFee"`
	HighTierPercent float64 `json:"highTierPercent"`
}

// GetDashboardMetricsQueryResponse is the full owner dashboard payload.
type GetDashboardMetricsQueryResponse struct {
	Period   string                `json:"period"`
	Metrics  services.Report       `json:"metrics"`
	Settings DashboardSettingsView `json:"settings"`
}
