package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancellation is exactly a status update to cancelled, so the handler
// delegates to UpdateOrderStatusCommandHandler and inherits its state
// machine enforcement and version-checked write.
type CancelOrderCommandHandler struct {
	updateStatus UpdateOrderStatusCommandHandler
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		updateStatus: NewUpdateOrderStatusCommandHandler(uowFactory),
	}
}

// Handle processes the cancellation and returns the cancelled aggregate.
// Fails with a not-found error if the order does not exist and with a
// validation error once the order is completed or already cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updateCmd, err := NewUpdateOrderStatusCommand(cmd.OrderID(), order.Cancelled)
	if err != nil {
		return nil, err
	}

	return h.updateStatus.Handle(ctx, updateCmd)
}
