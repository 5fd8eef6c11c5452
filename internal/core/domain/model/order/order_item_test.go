package order_test

import (
	"strings"
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	t.Run("creates a valid item", func(t *testing.T) {
		id := kernel.NewUUID()
		item, err := order.NewOrderItem(id, "espresso machine", 2, 54900)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, id.IsEqual(item.ID()))
		assert.Equal(t, "espresso machine", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, int64(54900), item.Price())
		assert.Equal(t, int64(109800), item.Subtotal())
		assert.Nil(t, item.OrderID())
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.NewOrderItem(zero, "espresso machine", 1, 100)
		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.NewUUID(), "", 1, 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("rejects whitespace-only name", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.NewUUID(), "   ", 1, 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects name longer than 255 characters", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.NewUUID(), strings.Repeat("x", 256), 1, 100)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("counts name length in runes, not bytes", func(t *testing.T) {
		item, err := order.NewOrderItem(kernel.NewUUID(), strings.Repeat("ü", 255), 1, 100)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("ü", 255), item.Name())

		_, err = order.NewOrderItem(kernel.NewUUID(), strings.Repeat("ü", 256), 1, 100)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.NewUUID(), "beans", 0, 100)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.NewUUID(), "beans", 1, -100)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
	})
}

func TestOrderItem_Mutators(t *testing.T) {
	newItem := func(t *testing.T) *order.OrderItem {
		t.Helper()
		item, err := order.NewOrderItem(kernel.NewUUID(), "grinder", 1, 9900)
		require.NoError(t, err)
		return item
	}

	t.Run("valid mutation replaces the value", func(t *testing.T) {
		item := newItem(t)

		require.NoError(t, item.SetName("burr grinder"))
		require.NoError(t, item.SetQuantity(3))
		require.NoError(t, item.SetPrice(10900))

		assert.Equal(t, "burr grinder", item.Name())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, int64(10900), item.Price())
	})

	t.Run("rejected mutation keeps the prior value", func(t *testing.T) {
		item := newItem(t)

		require.Error(t, item.SetName(""))
		require.Error(t, item.SetQuantity(-5))
		require.Error(t, item.SetPrice(0))

		assert.Equal(t, "grinder", item.Name())
		assert.Equal(t, 1, item.Quantity())
		assert.Equal(t, int64(9900), item.Price())
	})
}

func TestRestoreOrderItem(t *testing.T) {
	t.Run("binds the owning order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		item, err := order.RestoreOrderItem(kernel.NewUUID(), orderID, "filter papers", 4, 450)

		require.NoError(t, err)
		require.NotNil(t, item.OrderID())
		assert.True(t, orderID.IsEqual(*item.OrderID()))
	})

	t.Run("rejects corrupt persisted values", func(t *testing.T) {
		_, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.NewUUID(), "", 4, 450)
		require.Error(t, err)
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.RestoreOrderItem(kernel.NewUUID(), zero, "filter papers", 4, 450)
		require.Error(t, err)
	})
}

func TestOrderItem_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.OrderItem
		require.ErrorIs(t, item.Validate(), order.ErrOrderItemIsNotConstructed)
	})

	t.Run("nil item fails validation", func(t *testing.T) {
		var item *order.OrderItem
		require.ErrorIs(t, item.Validate(), order.ErrOrderItemIsNotConstructed)
	})
}
