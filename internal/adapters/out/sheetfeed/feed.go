package sheetfeed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kitchenboard/internal/core/domain/model/order"
	"kitchenboard/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Feed implements ports.OrderFeed over an HTTP CSV export.
type Feed struct {
	client *http.Client
	url    string
}

// NewFeed creates a feed reading the CSV export at url.
func NewFeed(url string) *Feed {
	return &Feed{
		client: &http.Client{Timeout: defaultTimeout},
		url:    url,
	}
}

// Fetch downloads the export and parses every data row. The header row is
// re-resolved on each fetch so column reordering between passes is harmless.
func (f *Feed) Fetch(ctx context.Context) ([]ports.IntakeRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	return parse(resp.Body)
}

func parse(r io.Reader) ([]ports.IntakeRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may be shorter than the header

	header, err := reader.Read()
	if err == io.EOF {
		return []ports.IntakeRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read feed header: %w", err)
	}

	s, err := resolveSchema(header)
	if err != nil {
		return nil, err
	}

	records := make([]ports.IntakeRecord, 0)
	for {
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read feed row: %w", readErr)
		}

		if isBlank(row) {
			continue
		}

		records = append(records, recordFromRow(s, row))
	}

	return records, nil
}

func recordFromRow(s schema, row []string) ports.IntakeRecord {
	return ports.IntakeRecord{
		OrderID: s.field(row, colOrderID),
		Status:  s.field(row, colStatus),
		Details: order.Details{
			CustomerName:   s.field(row, colCustomerName),
			Phone:          s.field(row, colPhone),
			Items:          s.field(row, colItems),
			Quantity:       s.field(row, colQuantity),
			Amount:         parseMoney(s.field(row, colAmount)),
			DeliveryFee:    parseMoney(s.field(row, colDeliveryFee)),
			TotalAmount:    parseMoney(s.field(row, colTotalAmount)),
			DeliveryOption: s.field(row, colDeliveryOption),
			DeliveryZone:   s.field(row, colDeliveryZone),
			PaymentMethod:  s.field(row, colPaymentMethod),
			Commission:     parseMoney(s.field(row, colCommission)),
			Notes:          s.field(row, colNotes),
			Date:           s.field(row, colDate),
			Time:           s.field(row, colTime),
		},
	}
}

// parseMoney reads a numeric cell tolerantly: currency prefixes and thousands
// separators are stripped, anything unparseable counts as zero.
func parseMoney(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}

	cell = strings.TrimFunc(cell, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-'
	})
	cell = strings.ReplaceAll(cell, ",", "")

	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0
	}
	return value
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
