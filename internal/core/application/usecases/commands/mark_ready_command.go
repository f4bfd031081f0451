package commands

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand represents the kitchen finishing an order in progress.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a command for marking an order ready.
func NewMarkReadyCommand(orderID string) (MarkReadyCommand, error) {
	if orderID == "" {
		return MarkReadyCommand{}, ErrOrderIDIsRequired
	}

	return MarkReadyCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark ready.
func (c MarkReadyCommand) OrderID() string {
	return c.orderID
}
