// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly and return plain response
// structures, bypassing the aggregate construction path that write
// operations go through.
package queries

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderItemResponse represents one order line in a query result.
type OrderItemResponse struct {
	ID       kernel.UUID
	Name     string
	Quantity int
	Price    int64
}

// OrderResponse represents one order in a query result. Only fields meant
// for external consumers appear here; internal bookkeeping such as the
// optimistic concurrency version does not leak out of the read side.
type OrderResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	TotalAmount int64
	Status      order.Status
	Items       []OrderItemResponse
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
