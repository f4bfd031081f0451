package commands

import (
	"context"
	"time"
)

// ClearOrderCommandHandler soft-clears a ready order from the ready board.
// Clearing an already-cleared order succeeds without touching the row again.
type ClearOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClearOrderCommandHandler creates a handler for clearing single orders.
func NewClearOrderCommandHandler(uowFactory OrderUoWFactory) ClearOrderCommandHandler {
	return ClearOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stamps clearedAt on a ready order.
func (h *ClearOrderCommandHandler) Handle(ctx context.Context, cmd ClearOrderCommand) error {
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

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.IsCleared() {
		return nil
	}

	if err = aggregate.Clear(time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
