package commands

import (
	"context"
	"time"
)

// UpdateMenuStatusCommandHandler changes the availability of a single menu
// item. Lookup is by exact name; fuzzy matching exists only on the read side
// for availability checks, never for writes.
type UpdateMenuStatusCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuStatusCommandHandler creates a handler for menu status updates.
func NewUpdateMenuStatusCommandHandler(uowFactory MenuUoWFactory) UpdateMenuStatusCommandHandler {
	return UpdateMenuStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the item's status and stamps the staff audit fields.
func (h *UpdateMenuStatusCommandHandler) Handle(ctx context.Context, cmd UpdateMenuStatusCommand) error {
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

	repo := uow.MenuRepository()
	item, err := repo.GetByName(ctx, cmd.ItemName())
	if err != nil {
		return err
	}

	if err = item.SetStatus(cmd.Status(), cmd.Staff(), time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
