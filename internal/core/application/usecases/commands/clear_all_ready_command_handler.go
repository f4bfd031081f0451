package commands

import (
	"context"
	"time"
)

// ClearAllReadyCommandHandler clears every uncleared ready order in one
// transaction, stamping them all with the same timestamp.
type ClearAllReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClearAllReadyCommandHandler creates a handler for sweeping the ready board.
func NewClearAllReadyCommandHandler(uowFactory OrderUoWFactory) ClearAllReadyCommandHandler {
	return ClearAllReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of orders cleared. An empty ready board clears
// zero orders and is not an error.
func (h *ClearAllReadyCommandHandler) Handle(ctx context.Context, cmd ClearAllReadyCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregates, err := repo.GetAllReadyUncleared(ctx)
	if err != nil {
		return 0, err
	}

	clearedAt := time.Now()
	for _, aggregate := range aggregates {
		if err = aggregate.Clear(clearedAt); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(aggregates), nil
}
