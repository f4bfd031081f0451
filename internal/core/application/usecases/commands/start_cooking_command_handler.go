package commands

import (
	"context"
	"time"

	"kitchenboard/internal/pkg/errs"
)

// StartCookingCommandHandler handles the Pending -> InProgress transition.
//
// The lookup locks the row for the duration of the transaction, so two
// concurrent acceptances of the same order cannot both succeed: the loser
// blocks on Get, then observes an order that is no longer Pending and
// receives NotFound. An absent order and an order in the wrong state are
// deliberately indistinguishable to the caller.
type StartCookingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartCookingCommandHandler creates a handler for order acceptance.
func NewStartCookingCommandHandler(uowFactory OrderUoWFactory) StartCookingCommandHandler {
	return StartCookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle accepts a pending order: sets status to InProgress and records the
// accepting staff member with the current timestamp.
func (h *StartCookingCommandHandler) Handle(ctx context.Context, cmd StartCookingCommand) error {
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

	if err = aggregate.StartCooking(cmd.Staff(), time.Now()); err != nil {
		return errs.NewObjectNotFoundErrorWithCause("order", cmd.OrderID(), err)
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
