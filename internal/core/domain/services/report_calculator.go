package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Period names accepted by ResolveWindow.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodWeek      = "week"
	PeriodMonth     = "month"
	PeriodSemester  = "semester"
	PeriodCustom    = "custom"
)

// SmallOrderThreshold splits small and large orders for commission reporting.
// The split is by the item amount, not the delivery-inclusive total.
const SmallOrderThreshold = 50.0

// Window is a half-open date range [Start, End) used to filter orders.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// CustomRange carries the explicit bounds of a custom reporting period as
// supplied by the caller. End is inclusive of the whole end date.
type CustomRange struct {
	Start string
	End   string
}

// ReportOrder is one order row as consumed by the report calculator. The
// query layer maps persisted orders into this flat shape; Date and Time stay
// raw strings and are parsed tolerantly here.
type ReportOrder struct {
	OrderID        string  `json:"orderId"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	CustomerName   string  `json:"customerName"`
	Phone          string  `json:"phone"`
	Items          string  `json:"items"`
	Quantity       string  `json:"quantity"`
	Amount         float64 `json:"amount"`
	DeliveryFee    float64 `json:"deliveryFee"`
	TotalAmount    float64 `json:"totalAmount"`
	Commission     float64 `json:"commission"`
	DeliveryOption string  `json:"deliveryOption"`
	DeliveryZone   string  `json:"deliveryZone"`
	PaymentMethod  string  `json:"paymentMethod"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
	AcceptedBy     string  `json:"acceptedBy"`
}

// StaffPerformance is one entry of the top-staff breakdown.
type StaffPerformance struct {
	Name      string `json:"name"`
	Orders    int    `json:"orders"`
	AvgAmount string `json:"avgAmount"`
}

// ItemCount is one entry of the popular-items breakdown.
type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// HourCount is one entry of the peak-hours breakdown, hour formatted for display.
type HourCount struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// CustomerCount is one entry of the customer leaderboard, phone masked.
type CustomerCount struct {
	Phone  string `json:"phone"`
	Orders int    `json:"orders"`
}

// Report is the flat metrics snapshot returned to the owner dashboard.
// Monetary values are formatted to two decimals at this boundary; an empty
// window produces the explicit all-zero snapshot, never an error.
type Report struct {
	TotalSales            string             `json:"totalSales"`
	TotalOrders           int                `json:"totalOrders"`
	TotalCommission       string             `json:"totalCommission"`
	SmallOrders           int                `json:"smallOrders"`
	SmallOrdersCommission string             `json:"smallOrdersCommission"`
	LargeOrders           int                `json:"largeOrders"`
	LargeOrdersCommission string             `json:"largeOrdersCommission"`
	PendingCount          int                `json:"pendingCount"`
	CookingCount          int                `json:"cookingCount"`
	ReadyCount            int                `json:"readyCount"`
	CancelledCount        int                `json:"cancelledCount"`
	RepeatCustomers       int                `json:"repeatCustomers"`
	CashPayments          int                `json:"cashPayments"`
	CashPercent           int                `json:"cashPercent"`
	OnlinePayments        int                `json:"onlinePayments"`
	OnlinePercent         int                `json:"onlinePercent"`
	DeliveryCount         int                `json:"deliveryCount"`
	PickupCount           int                `json:"pickupCount"`
	TopStaff              []StaffPerformance `json:"topStaff"`
	PopularItems          []ItemCount        `json:"popularItems"`
	PeakHours             []HourCount        `json:"peakHours"`
	CustomerLeaderboard   []CustomerCount    `json:"customerLeaderboard"`
	Orders                []ReportOrder      `json:"orders"`
}

// EmptyReport returns the all-zero snapshot used for empty tables and windows.
func EmptyReport() Report {
	return Report{
		TotalSales:            "0.00",
		TotalCommission:       "0.00",
		SmallOrdersCommission: "0.00",
		LargeOrdersCommission: "0.00",
		TopStaff:              []StaffPerformance{},
		PopularItems:          []ItemCount{},
		PeakHours:             []HourCount{},
		CustomerLeaderboard:   []CustomerCount{},
		Orders:                []ReportOrder{},
	}
}

// ReportCalculator is a stateless domain service that aggregates order rows
// into the owner dashboard snapshot.
//
// Aggregation rules:
//   - Rows with unparseable dates or outside the window are skipped silently
//   - Cancelled orders count toward cancelledCount only; they are excluded
//     from sales, commission, and every breakdown
//   - Small/large orders split at SmallOrderThreshold by Amount
//   - Top-N lists are sorted descending by count, ties broken by
//     first-encountered row order
type ReportCalculator struct{}

// NewReportCalculator creates a new ReportCalculator instance.
func NewReportCalculator() ReportCalculator {
	return ReportCalculator{}
}

// ResolveWindow maps a period name to a half-open window [start, end).
// An unrecognized period falls back to today. The custom period requires an
// explicit range; its end bound is extended by one day so the given end date
// is included.
func (c ReportCalculator) ResolveWindow(period string, custom *CustomRange, semesterStart, now time.Time) Window {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := 24 * time.Hour

	if period == PeriodCustom && custom != nil {
		start, startOK := ParseOrderDate(custom.Start)
		end, endOK := ParseOrderDate(custom.End)
		if startOK && endOK {
			return Window{Start: start, End: end.Add(day)}
		}
	}

	switch period {
	case PeriodYesterday:
		return Window{Start: today.Add(-day), End: today}
	case PeriodWeek:
		return Window{Start: today.Add(-7 * day), End: today.Add(day)}
	case PeriodMonth:
		return Window{Start: today.Add(-30 * day), End: today.Add(day)}
	case PeriodSemester:
		return Window{Start: semesterStart, End: now.Add(day)}
	default: // today, and any unrecognized period
		return Window{Start: today, End: today.Add(day)}
	}
}

// Calculate aggregates the rows falling inside the window into a Report.
func (c ReportCalculator) Calculate(rows []ReportOrder, window Window) Report {
	report := EmptyReport()

	var totalSales, totalCommission, smallCommission, largeCommission float64
	staff := newOrderedMap[*staffTotals]()
	items := newOrderedMap[int]()
	hours := newOrderedMap[int]()
	customers := newOrderedMap[int]()

	for _, row := range rows {
		if row.OrderID == "" {
			continue
		}

		orderDate, ok := ParseOrderDate(row.Date)
		if !ok || !window.Contains(orderDate) {
			continue
		}

		status := strings.TrimSpace(row.Status)
		totalAmount := row.TotalAmount
		if totalAmount == 0 {
			totalAmount = row.Amount + row.DeliveryFee
		}

		switch status {
		case "Pending":
			report.PendingCount++
		case "In Progress":
			report.CookingCount++
		case "Ready":
			report.ReadyCount++
		case "Cancelled":
			report.CancelledCount++
		}

		if status == "Cancelled" {
			continue
		}

		report.TotalOrders++
		totalSales += totalAmount
		totalCommission += row.Commission

		if row.Amount < SmallOrderThreshold {
			report.SmallOrders++
			smallCommission += row.Commission
		} else {
			report.LargeOrders++
			largeCommission += row.Commission
		}

		row.TotalAmount = totalAmount
		row.Status = status
		report.Orders = append(report.Orders, row)

		switch row.PaymentMethod {
		case "Cash":
			report.CashPayments++
		case "Online":
			report.OnlinePayments++
		}

		switch row.DeliveryOption {
		case "Delivery":
			report.DeliveryCount++
		case "Pickup":
			report.PickupCount++
		}

		if row.AcceptedBy != "" && status != "Pending" {
			perf := staff.get(row.AcceptedBy)
			if perf == nil {
				perf = &staffTotals{}
				staff.set(row.AcceptedBy, perf)
			}
			perf.orders++
			perf.totalAmount += totalAmount
		}

		if hour, hourOK := ExtractHour(row.Time); hourOK {
			hours.set(formatHourKey(hour), hours.get(formatHourKey(hour))+1)
		}

		for _, rawItem := range strings.Split(row.Items, ",") {
			item := strings.TrimSpace(rawItem)
			if item != "" {
				items.set(item, items.get(item)+1)
			}
		}

		if row.Phone != "" {
			customers.set(row.Phone, customers.get(row.Phone)+1)
		}
	}

	report.TotalSales = fmt.Sprintf("%.2f", totalSales)
	report.TotalCommission = fmt.Sprintf("%.2f", totalCommission)
	report.SmallOrdersCommission = fmt.Sprintf("%.2f", smallCommission)
	report.LargeOrdersCommission = fmt.Sprintf("%.2f", largeCommission)

	for _, count := range customers.values() {
		if count >= 2 {
			report.RepeatCustomers++
		}
	}

	totalPayments := report.CashPayments + report.OnlinePayments
	if totalPayments > 0 {
		report.CashPercent = int(float64(report.CashPayments)/float64(totalPayments)*100 + 0.5)
		report.OnlinePercent = int(float64(report.OnlinePayments)/float64(totalPayments)*100 + 0.5)
	}

	for _, entry := range staff.topN(5, func(p *staffTotals) int { return p.orders }) {
		avg := 0.0
		if entry.value.orders > 0 {
			avg = entry.value.totalAmount / float64(entry.value.orders)
		}
		report.TopStaff = append(report.TopStaff, StaffPerformance{
			Name:      entry.key,
			Orders:    entry.value.orders,
			AvgAmount: fmt.Sprintf("%.2f", avg),
		})
	}

	for _, entry := range items.topN(5, identity) {
		report.PopularItems = append(report.PopularItems, ItemCount{Item: entry.key, Count: entry.value})
	}

	for _, entry := range hours.topN(3, identity) {
		report.PeakHours = append(report.PeakHours, HourCount{Hour: entry.key, Count: entry.value})
	}

	for _, entry := range customers.topN(10, identity) {
		report.CustomerLeaderboard = append(report.CustomerLeaderboard, CustomerCount{
			Phone:  MaskPhone(entry.key),
			Orders: entry.value,
		})
	}

	return report
}

// ParseOrderDate parses the free-form date strings recorded at intake.
// Supported forms, in order: DD/MM/YYYY, YYYY-MM-DD (with or without a time
// component), and a small set of generic fallbacks. Returns false for
// anything unparseable; callers skip such rows silently.
func ParseOrderDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 {
			day, dayErr := parseInt(parts[0])
			month, monthErr := parseInt(parts[1])
			year, yearErr := parseInt(parts[2])
			if dayErr == nil && monthErr == nil && yearErr == nil &&
				month >= 1 && month <= 12 && day >= 1 && day <= 31 {
				return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
			}
		}
		return time.Time{}, false
	}

	for _, layout := range []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02 15:04:05",
		"Jan 2, 2006",
		"January 2, 2006",
	} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var hourPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)?`)

// ExtractHour pulls the 24-hour clock hour out of a free-text time string
// such as "2:30 PM" (14) or "12:00 AM" (0). Returns false when no clock time
// is present.
func ExtractHour(s string) (int, bool) {
	match := hourPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, false
	}

	hour, err := parseInt(match[1])
	if err != nil || hour > 23 {
		return 0, false
	}

	switch strings.ToLower(match[3]) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, true
}

// FormatHour renders a 24-hour clock hour for display ("12 AM", "2 PM").
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// MaskPhone hides all but the last four digits of a phone number.
func MaskPhone(phone string) string {
	if len(phone) < 4 {
		return phone
	}
	return "***" + phone[len(phone)-4:]
}

func formatHourKey(hour int) string {
	return FormatHour(hour)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func identity(n int) int { return n }

type staffTotals struct {
	orders      int
	totalAmount float64
}

// orderedMap is a counter that remembers first-insertion order so top-N
// truncation breaks ties by first-encountered row, matching the stable
// ordering the dashboard relies on.
type orderedMap[V any] struct {
	keys  []string
	byKey map[string]V
}

type orderedEntry[V any] struct {
	key   string
	value V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{byKey: make(map[string]V)}
}

func (m *orderedMap[V]) get(key string) V {
	return m.byKey[key]
}

func (m *orderedMap[V]) set(key string, value V) {
	if _, ok := m.byKey[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.byKey[key] = value
}

func (m *orderedMap[V]) values() []V {
	out := make([]V, 0, len(m.keys))
	for _, key := range m.keys {
		out = append(out, m.byKey[key])
	}
	return out
}

func (m *orderedMap[V]) topN(n int, count func(V) int) []orderedEntry[V] {
	entries := make([]orderedEntry[V], 0, len(m.keys))
	for _, key := range m.keys {
		entries = append(entries, orderedEntry[V]{key: key, value: m.byKey[key]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return count(entries[i].value) > count(entries[j].value)
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
