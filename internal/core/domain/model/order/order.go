package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder constructors. This ensures all orders
// are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer purchase in the system. It is the aggregate
// root that manages the order lifecycle from creation through processing to
// completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Must carry at least one item at creation
//   - TotalAmount always equals the sum of the items' price x quantity at
//     creation time and is never independently mutated
//   - Status transitions follow the state machine defined by Status
//   - Items are set at creation and never added to or removed afterwards
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The version field supports
// optimistic concurrency control in the persistence layer: every successful
// write increments it, and a stale version fails the write.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the purchasing customer; immutable after creation
	customerID kernel.UUID

	// totalAmount is the order total in cents, derived from the items
	totalAmount int64

	// status is the current state in the order lifecycle
	status Status

	// items are the order lines; at least one, immutable after creation
	items []*OrderItem

	// version is the optimistic concurrency counter
	version int64

	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to
// create a valid order for a fresh purchase.
//
// The order starts in Pending status with version 1, and its total amount is
// computed as the exact sum of price x quantity over the items, in cents.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - customerID: identifier of the purchasing customer (must be a valid UUID)
//   - items: the order lines; at least one, each already validated
//
// Example:
//
//	item, _ := order.NewOrderItem(kernel.NewUUID(), "coffee beans", 2, 1250)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []*order.OrderItem{item})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, customerID kernel.UUID, items []*OrderItem) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumItems(o.items)

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an Order from its persisted state.
// Used by repositories when loading aggregates; the stored total amount is
// trusted because items may be absent on lookups that skip them.
//
// Items may be nil for lookups without lines; when present each item must be
// a constructed OrderItem.
func RestoreOrder(
	id, customerID kernel.UUID,
	totalAmount int64,
	status Status,
	items []*OrderItem,
	version int64,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	o.totalAmount = totalAmount
	o.status = status
	o.items = items
	o.version = version
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.deletedAt = deletedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed if the order was not created via a
// constructor. Call this when reconstructing orders from persistence to
// ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TotalAmount returns the order total in cents.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order lines. Nil when the order was loaded without them.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// Version returns the optimistic concurrency counter.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeletedAt returns the soft-delete timestamp, or nil when the order is not
// deleted.
func (o *Order) DeletedAt() *time.Time {
	return o.deletedAt
}

// ChangeStatus moves the order along the lifecycle state machine.
//
// This method enforces the following business rules:
//   - Requesting the current status again is a no-op success
//   - Otherwise only the transitions defined by the state machine are allowed
//   - Completed and Cancelled are terminal; nothing moves out of them
//
// On failure the status is left unchanged and a validation error naming both
// states is returned. The check is pure and synchronous; its only side
// effect is updating the in-memory status on success.
//
// Example:
//
//	if err := o.ChangeStatus(order.Processing); err != nil {
//	    // Transition rejected by the state machine
//	}
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel marks the order as cancelled.
// Cancellation is a status transition to Cancelled: it succeeds from Pending
// and Processing and is rejected once the order is Completed or already
// Cancelled.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the purchasing customer's identifier.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems validates and sets the order lines.
// An order must have at least one item; zero items is a rejected request,
// not an empty order.
func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

// sumItems computes the exact total of the lines in cents.
func sumItems(items []*OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
