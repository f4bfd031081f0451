// Package queries contains read-only operations implementing the query side
// of the CQRS architecture. Query handlers read the database directly and
// return view structs shaped for the two display clients, bypassing the
// domain aggregates.
package queries

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the kitchen work queue: orders waiting to be
// accepted and orders currently cooking.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	fmt.Printf("%d pending, %d cooking\n", len(board.Pending), len(board.Cooking))
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the kitchen work queue.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// ActiveOrderView is one row of the kitchen display.
type ActiveOrderView struct {
	OrderID        string  `json:"orderId"`
	CustomerName   string  `json:"customerName"`
	Phone          string  `json:"phone"`
	Items          string  `json:"items"`
	Quantity       string  `json:"quantity"`
	TotalAmount    float64 `json:"totalAmount"`
	DeliveryOption string  `json:"deliveryOption"`
	DeliveryZone   string  `json:"deliveryZone"`
	PaymentMethod  string  `json:"paymentMethod"`
	Notes          string  `json:"notes"`
	OrderTime      string  `json:"orderTime"`
	AcceptedBy     string  `json:"acceptedBy,omitempty"`
}

// GetActiveOrdersQueryResponse groups the work queue into the two kitchen
// display buckets. Both buckets preserve intake order.
type GetActiveOrdersQueryResponse struct {
	Pending []ActiveOrderView `json:"pending"`
	Cooking []ActiveOrderView `json:"cooking"`
}
