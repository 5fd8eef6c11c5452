// Package ports declares the contracts between the application core and its
// adapters: persistence, transactions, and the shapes they exchange.
package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderFilter narrows an order listing. Fields are optional; nil means no
// constraint on that field.
type OrderFilter struct {
	// Status keeps only orders in the given lifecycle status.
	Status *order.Status
}

// OrderPage is one page of orders plus the pagination envelope metadata.
type OrderPage struct {
	Orders     []*order.Order
	Pagination kernel.PageInfo
}

// OrderRepository defines the persistence contract for order aggregates.
// Soft-deleted orders are invisible to every read until restored.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is conditional on the aggregate's version: if a concurrent
	// writer has moved the version since this aggregate was read, Update
	// fails with a version conflict and changes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier, without items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetWithItems retrieves an order by its unique identifier,
	// including its line items.
	GetWithItems(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetPage retrieves one page of orders matching the filter.
	// Default ordering is by creation time descending unless the page
	// request carries an explicit ordering.
	GetPage(ctx context.Context, filter OrderFilter, page kernel.PageRequest) (OrderPage, error)

	// Delete removes an order. By default the removal is soft: the order is
	// timestamped as deleted and hidden from reads. With hard set, the row
	// and its items are removed permanently.
	Delete(ctx context.Context, id kernel.UUID, hard bool) error

	// Restore clears the soft-delete timestamp of an order, making it
	// visible to reads again.
	Restore(ctx context.Context, id kernel.UUID) error

	// PurgeDeletedBefore permanently removes orders that were soft-deleted
	// before the cutoff. Returns the number of orders removed.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
