package commands

import (
	"context"

	"kitchenboard/internal/core/ports"
)

// ReprintOrderCommandHandler forwards an order summary to the printer webhook
// with the reprint marker set. Unlike the ready notification, a failed
// delivery here is the whole point of the call failing: the caller pressed
// reprint and got no ticket, so the error surfaces.
type ReprintOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
}

// NewReprintOrderCommandHandler creates a handler for ticket reprints.
func NewReprintOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
) ReprintOrderCommandHandler {
	return ReprintOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle looks the order up and posts its summary to the printer webhook.
func (h *ReprintOrderCommandHandler) Handle(ctx context.Context, cmd ReprintOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	details := aggregate.Details()
	event := ports.ReprintEvent{
		OrderID:        aggregate.ID(),
		CustomerName:   details.CustomerName,
		Items:          details.Items,
		Quantity:       details.Quantity,
		DeliveryOption: details.DeliveryOption,
		DeliveryZone:   details.DeliveryZone,
		Amount:         details.Amount,
		Phone:          details.Phone,
		IsReprint:      true,
	}

	return h.notifier.NotifyReprint(ctx, event)
}
