package ports

import (
	"context"

	"kitchenboard/internal/core/domain/model/order"
)

// IntakeRecord is one order row fetched from the external intake feed.
// Status carries the feed's textual status; blank means Pending.
type IntakeRecord struct {
	OrderID string
	Status  string
	Details order.Details
}

// OrderFeed fetches order rows from the external intake source. Rows are
// appended by the ordering flow; the feed is read-only from this side.
type OrderFeed interface {
	Fetch(ctx context.Context) ([]IntakeRecord, error)
}
