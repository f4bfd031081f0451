// Package sheetfeed reads the external order intake feed: a CSV export of the
// spreadsheet the ordering flow appends to. Columns are located by header
// name, not position, so the sheet can be rearranged without breaking intake.
package sheetfeed

import (
	"strings"

	"kitchenboard/internal/pkg/errs"
)

// Header names after normalization. The sheet uses human headings like
// "Order ID" and "Customer Name"; normalization upper-cases and joins words
// with underscores.
const (
	colOrderID        = "ORDER_ID"
	colDate           = "DATE"
	colTime           = "TIME"
	colCustomerName   = "CUSTOMER_NAME"
	colPhone          = "PHONE"
	colItems          = "ITEMS"
	colQuantity       = "QUANTITY"
	colAmount         = "AMOUNT"
	colDeliveryFee    = "DELIVERY_FEE"
	colTotalAmount    = "TOTAL_AMOUNT"
	colDeliveryOption = "DELIVERY_OPTION"
	colDeliveryZone   = "DELIVERY_ZONE"
	colPaymentMethod  = "PAYMENT_METHOD"
	colCommission     = "COMMISSION"
	colNotes          = "NOTES"
	colStatus         = "STATUS"
)

// requiredColumns must all be present in the header row. A feed missing one
// fails the whole import pass immediately; importing rows with silently blank
// core fields corrupts every report downstream.
func requiredColumns() []string {
	return []string{
		colOrderID,
		colDate,
		colTime,
		colCustomerName,
		colPhone,
		colItems,
		colQuantity,
		colAmount,
		colDeliveryOption,
		colPaymentMethod,
		colStatus,
	}
}

// optionalColumns may be absent; their fields default to zero values.
func optionalColumns() []string {
	return []string{
		colDeliveryFee,
		colTotalAmount,
		colDeliveryZone,
		colCommission,
		colNotes,
	}
}

// schema maps normalized column names to their index in the header row.
type schema map[string]int

// normalizeHeader converts a sheet heading to its canonical column name:
// trimmed, upper-cased, inner whitespace collapsed to single underscores.
func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToUpper(strings.TrimSpace(h))), "_")
}

// resolveSchema locates every known column in the header row. Returns
// errs.MissingColumnError naming the first absent required column.
func resolveSchema(header []string) (schema, error) {
	s := make(schema, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if _, seen := s[name]; !seen {
			s[name] = i
		}
	}

	for _, col := range requiredColumns() {
		if _, ok := s[col]; !ok {
			return nil, errs.NewMissingColumnError(col)
		}
	}

	return s, nil
}

// field returns the trimmed cell value of a column, or "" when the column is
// absent or the row is short.
func (s schema) field(row []string, col string) string {
	idx, ok := s[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
