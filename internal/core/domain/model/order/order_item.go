package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through the NewOrderItem or RestoreOrderItem constructors.
var ErrOrderItemIsNotConstructed = errors.New(
	"OrderItem must be created via NewOrderItem or RestoreOrderItem constructor",
)

// maxItemNameLength bounds the item name; names longer than this are rejected.
const maxItemNameLength = 255

// OrderItem represents a single line of an order: a named product, the
// quantity purchased and the unit price in cents.
//
// OrderItem follows these invariants:
//   - Name is non-empty after trimming and at most 255 characters
//   - Quantity is a positive integer
//   - Price is a positive amount of cents
//   - A rejected mutation leaves the previous value untouched
//
// Items may be validated standalone: the owning order is only bound on
// persistence, so OrderID is nil until then.
type OrderItem struct {
	id      kernel.UUID
	orderID *kernel.UUID

	name     string
	quantity int
	price    int64

	isConstructed bool
}

// NewOrderItem creates a new OrderItem with validation.
//
// Parameters:
//   - id: unique identifier for the line (must be a valid UUID)
//   - name: product name, non-empty after trim, at most 255 characters
//   - quantity: units purchased, greater than 0
//   - price: unit price in cents, greater than 0
//
// Returns the item if all validations pass, or a field-scoped validation
// error identifying the offending field.
func NewOrderItem(id kernel.UUID, name string, quantity int, price int64) (*OrderItem, error) {
	item := &OrderItem{
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	item.id = id

	if err := errors.Join(
		item.SetName(name),
		item.SetQuantity(quantity),
		item.SetPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs an OrderItem from persistence, including the
// binding to its owning order. The stored values still pass through the
// mutators so corrupt rows cannot produce an invalid entity.
func RestoreOrderItem(
	id kernel.UUID,
	orderID kernel.UUID,
	name string,
	quantity int,
	price int64,
) (*OrderItem, error) {
	item, err := NewOrderItem(id, name, quantity, price)
	if err != nil {
		return nil, err
	}

	if err = orderID.Validate(); err != nil {
		return nil, err
	}
	item.orderID = &orderID

	return item, nil
}

// Validate ensures the OrderItem was created through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}

	return nil
}

// ID returns the line's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the owning order's identifier, or nil when the item has
// not been persisted yet.
func (i *OrderItem) OrderID() *kernel.UUID {
	return i.orderID
}

// Name returns the product name.
func (i *OrderItem) Name() string {
	return i.name
}

// Quantity returns the number of units purchased.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// Price returns the unit price in cents.
func (i *OrderItem) Price() int64 {
	return i.price
}

// Subtotal returns price multiplied by quantity, in cents.
func (i *OrderItem) Subtotal() int64 {
	return i.price * int64(i.quantity)
}

// SetName validates and assigns the product name.
// The name must be non-empty after trimming and at most 255 characters;
// on rejection the previous name is kept.
func (i *OrderItem) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if length := utf8.RuneCountInString(name); length > maxItemNameLength {
		return errs.NewValueIsOutOfRangeError("name", length, 1, maxItemNameLength)
	}

	i.name = name
	return nil
}

// SetQuantity validates and assigns the quantity.
// The quantity must be greater than 0; on rejection the previous quantity is
// kept.
func (i *OrderItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.quantity = quantity
	return nil
}

// SetPrice validates and assigns the unit price in cents.
// The price must be greater than 0; on rejection the previous price is kept.
func (i *OrderItem) SetPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d is not greater than 0", price),
		)
	}

	i.price = price
	return nil
}
