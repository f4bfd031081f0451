package commands

import (
	"errors"

	"kitchenboard/internal/core/domain/model/settings"
	"kitchenboard/internal/pkg/guard"
)

var ErrToggleKitchenStatusCommandIsNotConstructed = errors.New(
	"ToggleKitchenStatusCommand must be created via NewToggleKitchenStatusCommand constructor",
)

// ToggleKitchenStatusCommand represents setting the global kitchen
// OPEN/CLOSED flag that gates order intake.
type ToggleKitchenStatusCommand struct { //nolint:recvcheck //using for validation
	status settings.KitchenStatus

	guard guard.ConstructorGuard
}

// NewToggleKitchenStatusCommand creates a command for flipping the kitchen
// flag. The status arrives as its stored string form ("OPEN", "CLOSED").
func NewToggleKitchenStatusCommand(status string) (ToggleKitchenStatusCommand, error) {
	parsed, err := settings.KitchenStatusFromString(status)
	if err != nil {
		return ToggleKitchenStatusCommand{}, err
	}

	return ToggleKitchenStatusCommand{
		status: parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleKitchenStatusCommand) Validate() error {
	return c.guard.Validate(ErrToggleKitchenStatusCommandIsNotConstructed)
}

// Status returns the target kitchen status.
func (c ToggleKitchenStatusCommand) Status() settings.KitchenStatus {
	return c.status
}
