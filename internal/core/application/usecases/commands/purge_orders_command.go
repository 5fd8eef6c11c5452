package commands

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrPurgeOrdersCommandIsNotConstructed = errors.New(
		"PurgeOrdersCommand must be created via NewPurgeOrdersCommand constructor",
	)
)

// PurgeOrdersCommand represents a request to permanently remove orders that
// have been soft-deleted for longer than the retention window.
type PurgeOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeOrdersCommand creates a command to purge orders soft-deleted
// longer ago than retention. The retention must be positive so that a
// misconfigured zero value can never wipe freshly deleted orders.
func NewPurgeOrdersCommand(retention time.Duration) (PurgeOrdersCommand, error) {
	if retention <= 0 {
		return PurgeOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"retention",
			fmt.Errorf("%s is not greater than 0", retention),
		)
	}

	return PurgeOrdersCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrdersCommandIsNotConstructed)
}

// Retention returns how long soft-deleted orders are kept before purging.
func (c PurgeOrdersCommand) Retention() time.Duration {
	return c.retention
}
