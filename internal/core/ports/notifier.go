package ports

import "context"

// OrderReadyEvent is the summary forwarded to the ready webhook when an order
// finishes cooking.
type OrderReadyEvent struct {
	OrderID      string `json:"orderId"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Items        string `json:"items"`
	ReadyAt      string `json:"readyAt"`
}

// ReprintEvent is the order summary forwarded to the printer webhook for a
// manual ticket reprint.
type ReprintEvent struct {
	OrderID        string  `json:"orderId"`
	CustomerName   string  `json:"customerName"`
	Items          string  `json:"items"`
	Quantity       string  `json:"quantity"`
	DeliveryOption string  `json:"deliveryOption"`
	DeliveryZone   string  `json:"deliveryZone"`
	Amount         float64 `json:"amount"`
	Phone          string  `json:"phone"`
	IsReprint      bool    `json:"isReprint"`
}

// OrderNotifier forwards order events to the external webhook endpoints.
// Delivery is at most once: implementations make a single attempt and report
// the outcome; callers decide whether a failure is fatal. For the ready
// notification it never is — the state transition is authoritative once the
// row update commits.
type OrderNotifier interface {
	NotifyOrderReady(ctx context.Context, event OrderReadyEvent) error
	NotifyReprint(ctx context.Context, event ReprintEvent) error
}
