// Package order contains the order aggregate and its supporting entities.
// It implements the core business rules for the order lifecycle:
//
//   - Order: the aggregate root carrying customer, total amount, line items
//     and the lifecycle status
//   - OrderItem: a single line (name, quantity, unit price) with validated
//     mutators
//   - Status: the lifecycle state machine guarding valid transitions
//
// The aggregate uses private fields and constructor functions (NewOrder,
// RestoreOrder) so invariants cannot be bypassed by direct struct
// initialization. Amounts are integer cents; the total is derived from the
// items exactly once, at creation.
package order
