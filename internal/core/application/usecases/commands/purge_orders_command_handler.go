package commands

import (
	"context"
	"time"
)

// PurgeOrdersCommandHandler permanently removes orders whose soft-delete
// timestamp is older than the retention window. Runs on a schedule (see
// internal/jobs) rather than on a request path.
type PurgeOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeOrdersCommandHandler creates a handler for the retention purge.
func NewPurgeOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeOrdersCommandHandler {
	return PurgeOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns the number of orders
// removed. An empty sweep is a success with count zero, not an error.
func (h *PurgeOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.Retention())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.OrderRepository().PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
