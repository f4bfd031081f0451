// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"kitchenboard/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is the externally assigned order identifier; Seq is a
// database-assigned sequence preserving intake order for the displays.
type OrderDTO struct {
	OrderID        string `gorm:"primaryKey;size:64"`
	Seq            int64  `gorm:"autoIncrement;uniqueIndex"`
	CustomerName   string
	Phone          string `gorm:"size:32"`
	Items          string
	Quantity       string
	Amount         float64
	DeliveryFee    float64
	TotalAmount    float64
	DeliveryOption string `gorm:"size:32"`
	DeliveryZone   string
	PaymentMethod  string `gorm:"size:32"`
	Commission     float64
	Notes          string
	OrderDate      string `gorm:"size:64"`
	OrderTime      string `gorm:"size:64"`
	Status         int    `gorm:"index"`
	AcceptedBy     string
	AcceptedAt     *time.Time
	ReadyAt        *time.Time
	ClearedAt      *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()

	return OrderDTO{
		OrderID:        aggregate.ID(),
		CustomerName:   details.CustomerName,
		Phone:          details.Phone,
		Items:          details.Items,
		Quantity:       details.Quantity,
		Amount:         details.Amount,
		DeliveryFee:    details.DeliveryFee,
		TotalAmount:    details.TotalAmount,
		DeliveryOption: details.DeliveryOption,
		DeliveryZone:   details.DeliveryZone,
		PaymentMethod:  details.PaymentMethod,
		Commission:     details.Commission,
		Notes:          details.Notes,
		OrderDate:      details.Date,
		OrderTime:      details.Time,
		Status:         int(aggregate.Status()),
		AcceptedBy:     aggregate.AcceptedBy(),
		AcceptedAt:     aggregate.AcceptedAt(),
		ReadyAt:        aggregate.ReadyAt(),
		ClearedAt:      aggregate.ClearedAt(),
	}
}

// toDomain converts a database row to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	details := order.Details{
		CustomerName:   dto.CustomerName,
		Phone:          dto.Phone,
		Items:          dto.Items,
		Quantity:       dto.Quantity,
		Amount:         dto.Amount,
		DeliveryFee:    dto.DeliveryFee,
		TotalAmount:    dto.TotalAmount,
		DeliveryOption: dto.DeliveryOption,
		DeliveryZone:   dto.DeliveryZone,
		PaymentMethod:  dto.PaymentMethod,
		Commission:     dto.Commission,
		Notes:          dto.Notes,
		Date:           dto.OrderDate,
		Time:           dto.OrderTime,
	}

	return order.RestoreOrder(
		dto.OrderID,
		details,
		order.Status(dto.Status),
		dto.AcceptedBy,
		dto.AcceptedAt,
		dto.ReadyAt,
		dto.ClearedAt,
	)
}
