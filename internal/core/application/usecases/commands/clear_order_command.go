package commands

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var ErrClearOrderCommandIsNotConstructed = errors.New(
	"ClearOrderCommand must be created via NewClearOrderCommand constructor",
)

// ClearOrderCommand represents removing a single ready order from the ready
// board. The row itself is kept; only a cleared timestamp is stamped.
type ClearOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewClearOrderCommand creates a command for clearing one ready order.
func NewClearOrderCommand(orderID string) (ClearOrderCommand, error) {
	if orderID == "" {
		return ClearOrderCommand{}, ErrOrderIDIsRequired
	}

	return ClearOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearOrderCommand) Validate() error {
	return c.guard.Validate(ErrClearOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to clear.
func (c ClearOrderCommand) OrderID() string {
	return c.orderID
}
