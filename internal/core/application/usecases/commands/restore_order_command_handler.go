package commands

import (
	"context"
)

// RestoreOrderCommandHandler handles undoing a soft delete.
type RestoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRestoreOrderCommandHandler creates a handler for order restoration.
func NewRestoreOrderCommandHandler(uowFactory OrderUoWFactory) RestoreOrderCommandHandler {
	return RestoreOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restore command.
// Fails with a not-found error if no soft-deleted order with the given
// identifier exists.
func (h *RestoreOrderCommandHandler) Handle(ctx context.Context, cmd RestoreOrderCommand) error {
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

	if err := uow.OrderRepository().Restore(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
