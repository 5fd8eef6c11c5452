package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrRestoreOrderCommandIsNotConstructed = errors.New(
		"RestoreOrderCommand must be created via NewRestoreOrderCommand constructor",
	)
)

// RestoreOrderCommand represents a request to bring a soft-deleted order
// back: the deletion timestamp is cleared and the order becomes visible to
// reads again.
type RestoreOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreOrderCommand creates a command to restore the given order.
func NewRestoreOrderCommand(orderID kernel.UUID) (RestoreOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RestoreOrderCommand{}, err
	}

	return RestoreOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to restore.
func (c RestoreOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
