package queries

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var ErrGetReadyOrdersQueryIsNotConstructed = errors.New(
	"GetReadyOrdersQuery must be created via NewGetReadyOrdersQuery constructor",
)

// GetReadyOrdersQuery retrieves the pickup board: orders that finished
// cooking and have not been cleared yet.
type GetReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyOrdersQuery creates a query for the pickup board.
func NewGetReadyOrdersQuery() GetReadyOrdersQuery {
	return GetReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyOrdersQueryIsNotConstructed)
}

// ReadyOrderView is one row of the pickup board. ReadyAt carries only the
// clock time ("14:30"); the board shows today's orders.
type ReadyOrderView struct {
	OrderID        string  `json:"orderId"`
	CustomerName   string  `json:"customerName"`
	Phone          string  `json:"phone"`
	Items          string  `json:"items"`
	DeliveryOption string  `json:"deliveryOption"`
	DeliveryZone   string  `json:"deliveryZone"`
	Amount         float64 `json:"amount"`
	ReadyAt        string  `json:"readyAt"`
}
