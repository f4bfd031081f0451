package commands

import (
	"context"
)

// ToggleKitchenStatusCommandHandler writes the global kitchen OPEN/CLOSED
// flag, creating the settings row when it does not exist yet.
type ToggleKitchenStatusCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewToggleKitchenStatusCommandHandler creates a handler for the kitchen flag.
func NewToggleKitchenStatusCommandHandler(uowFactory SettingsUoWFactory) ToggleKitchenStatusCommandHandler {
	return ToggleKitchenStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the new kitchen status.
func (h *ToggleKitchenStatusCommandHandler) Handle(ctx context.Context, cmd ToggleKitchenStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingsRepository().SetKitchenStatus(ctx, cmd.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
