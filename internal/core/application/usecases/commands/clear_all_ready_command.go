package commands

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var ErrClearAllReadyCommandIsNotConstructed = errors.New(
	"ClearAllReadyCommand must be created via NewClearAllReadyCommand constructor",
)

// ClearAllReadyCommand represents sweeping every remaining order off the
// ready board at once.
type ClearAllReadyCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewClearAllReadyCommand creates a command for clearing the whole ready board.
func NewClearAllReadyCommand() (ClearAllReadyCommand, error) {
	return ClearAllReadyCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearAllReadyCommand) Validate() error {
	return c.guard.Validate(ErrClearAllReadyCommandIsNotConstructed)
}
