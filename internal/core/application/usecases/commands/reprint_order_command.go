package commands

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var ErrReprintOrderCommandIsNotConstructed = errors.New(
	"ReprintOrderCommand must be created via NewReprintOrderCommand constructor",
)

// ReprintOrderCommand represents requesting a fresh kitchen ticket for an
// existing order. It changes no state; the ticket is produced by the printer
// webhook downstream.
type ReprintOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewReprintOrderCommand creates a command for reprinting a ticket.
func NewReprintOrderCommand(orderID string) (ReprintOrderCommand, error) {
	if orderID == "" {
		return ReprintOrderCommand{}, ErrOrderIDIsRequired
	}

	return ReprintOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReprintOrderCommand) Validate() error {
	return c.guard.Validate(ErrReprintOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reprint.
func (c ReprintOrderCommand) OrderID() string {
	return c.orderID
}
