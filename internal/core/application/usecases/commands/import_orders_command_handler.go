package commands

import (
	"context"
	"errors"
	"log/slog"

	"kitchenboard/internal/core/domain/model/order"
	"kitchenboard/internal/core/ports"
)

// ImportOrdersCommandHandler pulls order rows from the external intake feed
// and persists the ones not seen before. The feed is append-only on its side,
// so each pass re-reads it fully and relies on the duplicate check to make
// the import idempotent.
//
// A malformed record is skipped and logged, never fatal: one bad row must not
// stall intake for the rows behind it.
type ImportOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	feed       ports.OrderFeed
	logger     *slog.Logger
}

// NewImportOrdersCommandHandler creates a handler for feed import passes.
func NewImportOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	feed ports.OrderFeed,
	logger *slog.Logger,
) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
		feed:       feed,
		logger:     logger.With("component", "import_orders_handler"),
	}
}

// Handle fetches the feed and stores new orders, returning how many were
// imported this pass.
func (h *ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	records, err := h.feed.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	var imported, skipped, malformed int
	for _, record := range records {
		aggregate, buildErr := aggregateFromIntake(record)
		if buildErr != nil {
			malformed++
			h.logger.WarnContext(ctx, "skipping malformed intake record",
				"orderId", record.OrderID, "error", buildErr)
			continue
		}

		addErr := repo.Add(ctx, aggregate)
		switch {
		case addErr == nil:
			imported++
		case errors.Is(addErr, ports.ErrDuplicateOrder):
			skipped++
		default:
			return 0, addErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if imported > 0 || malformed > 0 {
		h.logger.InfoContext(ctx, "feed import pass finished",
			"fetched", len(records), "imported", imported,
			"skipped", skipped, "malformed", malformed)
	}

	return imported, nil
}

// aggregateFromIntake builds an Order from a feed record. A blank feed status
// means the row predates status tracking and is treated as Pending.
func aggregateFromIntake(record ports.IntakeRecord) (*order.Order, error) {
	if record.Status == "" {
		return order.NewOrder(record.OrderID, record.Details)
	}

	status, err := order.StatusFromString(record.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(record.OrderID, record.Details, status, "", nil, nil, nil)
}
