package commands

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var ErrImportOrdersCommandIsNotConstructed = errors.New(
	"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
)

// ImportOrdersCommand represents one synchronization pass over the external
// order intake feed.
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates a command for a feed import pass.
func NewImportOrdersCommand() (ImportOrdersCommand, error) {
	return ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}
