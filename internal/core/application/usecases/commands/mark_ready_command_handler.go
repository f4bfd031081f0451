package commands

import (
	"context"
	"log/slog"
	"time"

	"kitchenboard/internal/core/ports"
	"kitchenboard/internal/pkg/errs"
)

// MarkReadyCommandHandler handles the InProgress -> Ready transition and the
// order_ready webhook notification that follows it.
//
// The state change is authoritative once the row update commits. The webhook
// attempt happens after the commit, at most once; a failed attempt is logged
// and never rolls back or fails the transition.
type MarkReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewMarkReadyCommandHandler creates a handler for finishing orders.
func NewMarkReadyCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "mark_ready_handler"),
	}
}

// Handle marks an in-progress order ready, stamps readyAt, then makes a
// best-effort webhook notification with the order summary.
func (h *MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) error {
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

	readyAt := time.Now()
	if err = aggregate.MarkReady(readyAt); err != nil {
		return errs.NewObjectNotFoundErrorWithCause("order", cmd.OrderID(), err)
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	details := aggregate.Details()
	event := ports.OrderReadyEvent{
		OrderID:      aggregate.ID(),
		CustomerName: details.CustomerName,
		Phone:        details.Phone,
		Items:        details.Items,
		ReadyAt:      readyAt.Format("2006-01-02 15:04:05"),
	}

	if notifyErr := h.notifier.NotifyOrderReady(ctx, event); notifyErr != nil {
		h.logger.ErrorContext(ctx, "order ready webhook failed",
			"orderId", aggregate.ID(), "error", notifyErr)
	} else {
		h.logger.InfoContext(ctx, "order ready webhook delivered", "orderId", aggregate.ID())
	}

	return nil
}
