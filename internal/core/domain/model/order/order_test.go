package order_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func historyStatuses(o *order.Order) []order.Status {
	out := make([]order.Status, 0)
	for _, change := range o.StatusHistory() {
		out = append(out, change.Status())
	}
	return out
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in created status with one history entry", func(t *testing.T) {
		userID := kernel.NewUUID()

		o, err := order.NewOrder(userID)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		require.NoError(t, o.ID().Validate())
		assert.True(t, o.UserID().IsEqual(userID))
		assert.Equal(t, order.Created, o.Status())
		assert.True(t, o.TotalAmount().IsZero())
		assert.Empty(t, o.Items())
		assert.False(t, o.CreatedAt().IsZero())

		history := o.StatusHistory()
		require.Len(t, history, 1)
		assert.Equal(t, order.Created, history[0].Status())
		assert.True(t, history[0].OrderID().IsEqual(o.ID()))
		assert.Equal(t, o.CreatedAt(), history[0].ChangedAt())
	})

	t.Run("should fail without a user", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Nil(t, o)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should keep total equal to the exact sum of subtotals", func(t *testing.T) {
		o := newTestOrder(t)

		lines := []struct {
			price    string
			quantity int
		}{
			{"0.10", 3},
			{"0.20", 1},
			{"19.99", 7},
			{"0", 5},
			{"1234567.891", 2},
		}
		expected := decimal.Zero
		for _, line := range lines {
			_, err := o.AddItem("product", dec(line.price), line.quantity)
			require.NoError(t, err)
			expected = expected.Add(dec(line.price).Mul(decimal.NewFromInt(int64(line.quantity))))
		}

		assert.True(t, o.TotalAmount().Equal(dec("2469276.212")), o.TotalAmount().String())
		assert.True(t, o.TotalAmount().Equal(expected))
		assert.Len(t, o.Items(), len(lines))
	})

	t.Run("should return the added item with its subtotal", func(t *testing.T) {
		o := newTestOrder(t)

		item, err := o.AddItem("widget", dec("9.99"), 3)

		require.NoError(t, err)
		require.NoError(t, item.ID().Validate())
		assert.True(t, item.OrderID().IsEqual(o.ID()))
		assert.Equal(t, "widget", item.ProductName())
		assert.True(t, item.Price().Equal(dec("9.99")))
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.Subtotal().Equal(dec("29.97")))
	})

	t.Run("should preserve insertion order", func(t *testing.T) {
		o := newTestOrder(t)
		for _, name := range []string{"a", "b", "c"} {
			_, err := o.AddItem(name, dec("1"), 1)
			require.NoError(t, err)
		}

		items := o.Items()
		assert.Equal(t, "a", items[0].ProductName())
		assert.Equal(t, "b", items[1].ProductName())
		assert.Equal(t, "c", items[2].ProductName())
	})

	t.Run("should reject zero and negative quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			o := newTestOrder(t)

			item, err := o.AddItem("widget", dec("1.00"), quantity)

			require.ErrorIs(t, err, order.ErrInvalidQuantity)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, item)
			assert.Empty(t, o.Items())
			assert.True(t, o.TotalAmount().IsZero())
		}
	})

	t.Run("should reject negative price", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddItem("widget", dec("-0.01"), 1)

		require.ErrorIs(t, err, order.ErrInvalidPrice)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, err, order.ErrInvalidQuantity)
		assert.Contains(t, err.Error(), "-0.01")
		assert.Empty(t, o.Items())
	})

	t.Run("should accept zero price", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddItem("gift", dec("0"), 1)

		require.NoError(t, err)
		assert.True(t, o.TotalAmount().IsZero())
	})

	t.Run("should accept an empty product name", func(t *testing.T) {
		o := newTestOrder(t)

		item, err := o.AddItem("", dec("1"), 1)

		require.NoError(t, err)
		assert.Equal(t, "", item.ProductName())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddItem("widget", dec("-1"), 0)

		require.ErrorIs(t, err, order.ErrInvalidPrice)
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("should reject items on a cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		_, err := o.AddItem("widget", dec("1"), 1)

		require.ErrorIs(t, err, order.ErrOrderCancelled)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Contains(t, err.Error(), o.ID().String())
	})

	t.Run("should allow items after payment", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay())

		_, err := o.AddItem("widget", dec("2.50"), 2)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.True(t, o.TotalAmount().Equal(dec("5")))
	})

	t.Run("should roll back when the total would become negative", func(t *testing.T) {
		corrupted := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.Created, dec("-10.00"),
			time.Now().UTC(), nil, nil,
		)

		_, err := corrupted.AddItem("widget", dec("1.00"), 1)

		require.ErrorIs(t, err, order.ErrInvalidAmount)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, corrupted.TotalAmount().Equal(dec("-10.00")))
		assert.Empty(t, corrupted.Items())
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("should pay a created order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Pay())

		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, []order.Status{order.Created, order.Paid}, historyStatuses(o))
	})

	t.Run("should refuse to pay twice", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay())

		err := o.Pay()

		require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Len(t, o.StatusHistory(), 2)
	})

	t.Run("should refuse to pay a cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Pay(), order.ErrOrderCancelled)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a created order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, []order.Status{order.Created, order.Cancelled}, historyStatuses(o))
	})

	t.Run("should refuse to cancel twice", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Cancel(), order.ErrOrderAlreadyCancelled)
		assert.Len(t, o.StatusHistory(), 2)
	})

	t.Run("should refuse to cancel a paid order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay())

		require.ErrorIs(t, o.Cancel(), order.ErrOrderAlreadyPaid)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should refuse to cancel a shipped order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay())
		require.NoError(t, o.Ship())

		require.ErrorIs(t, o.Cancel(), order.ErrInvalidTransition)
	})
}

func TestOrder_ShipAndComplete(t *testing.T) {
	t.Run("should refuse to ship before payment", func(t *testing.T) {
		o := newTestOrder(t)

		require.ErrorIs(t, o.Ship(), order.ErrInvalidTransition)
		assert.Equal(t, order.Created, o.Status())
		assert.Len(t, o.StatusHistory(), 1)
	})

	t.Run("should refuse to complete before shipping", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay())

		require.ErrorIs(t, o.Complete(), order.ErrInvalidTransition)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should refuse to ship twice and complete twice", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay())
		require.NoError(t, o.Ship())
		require.ErrorIs(t, o.Ship(), order.ErrInvalidTransition)

		require.NoError(t, o.Complete())
		require.ErrorIs(t, o.Complete(), order.ErrInvalidTransition)
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_StatusHistory(t *testing.T) {
	t.Run("should append exactly one chronological entry per successful transition", func(t *testing.T) {
		o := newTestOrder(t)

		transitions := 1
		for _, step := range []func() error{o.Pay, o.Cancel, o.Pay, o.Ship, o.Ship, o.Complete} {
			if step() == nil {
				transitions++
			}
		}

		history := o.StatusHistory()
		require.Len(t, history, transitions)
		assert.Equal(t, []order.Status{order.Created, order.Paid, order.Shipped, order.Completed}, historyStatuses(o))
		for i := 1; i < len(history); i++ {
			assert.False(t, history[i].ChangedAt().Before(history[i-1].ChangedAt()))
			assert.False(t, history[i].ID().IsEqual(history[i-1].ID()))
		}
		assert.Equal(t, o.Status(), history[len(history)-1].Status())
	})

	t.Run("should return a copy", func(t *testing.T) {
		o := newTestOrder(t)

		history := o.StatusHistory()
		history[0] = nil

		assert.NotNil(t, o.StatusHistory()[0])
	})
}

func TestOrder_WidgetScenario(t *testing.T) {
	o := newTestOrder(t)

	_, err := o.AddItem("widget", dec("9.99"), 3)
	require.NoError(t, err)
	require.NoError(t, o.Pay())
	require.NoError(t, o.Ship())
	require.NoError(t, o.Complete())

	assert.Equal(t, order.Completed, o.Status())
	assert.Equal(t, "29.97", o.TotalAmount().String())
	assert.Equal(t,
		[]order.Status{order.Created, order.Paid, order.Shipped, order.Completed},
		historyStatuses(o))
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	userID := kernel.NewUUID()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	item := order.RestoreItem(kernel.NewUUID(), id, "widget", dec("9.99"), 3)
	history := []*order.StatusChange{
		order.RestoreStatusChange(kernel.NewUUID(), id, order.Created, createdAt),
		order.RestoreStatusChange(kernel.NewUUID(), id, order.Paid, createdAt.Add(time.Minute)),
	}

	o := order.RestoreOrder(id, userID, order.Paid, dec("29.97"), createdAt, []*order.Item{item}, history)

	require.NoError(t, o.Validate())
	assert.True(t, o.ID().IsEqual(id))
	assert.True(t, o.UserID().IsEqual(userID))
	assert.Equal(t, order.Paid, o.Status())
	assert.True(t, o.TotalAmount().Equal(dec("29.97")))
	assert.Equal(t, createdAt, o.CreatedAt())
	assert.Equal(t, []*order.Item{item}, o.Items())
	assert.Equal(t, history, o.StatusHistory(), "restoring must not append a history entry")

	t.Run("continues the lifecycle from the stored state", func(t *testing.T) {
		require.NoError(t, o.Ship())
		assert.Len(t, o.StatusHistory(), 3)
	})

	t.Run("does not write into the caller's slices", func(t *testing.T) {
		items := make([]*order.Item, 1, 4)
		items[0] = item
		stored := make([]*order.StatusChange, 2, 4)
		copy(stored, history)

		restored := order.RestoreOrder(id, userID, order.Paid, dec("29.97"), createdAt, items, stored)
		_, err := restored.AddItem("gadget", dec("1"), 1)
		require.NoError(t, err)
		require.NoError(t, restored.Ship())

		assert.Nil(t, items[:cap(items)][1])
		assert.Nil(t, stored[:cap(stored)][2])
		assert.Len(t, restored.Items(), 2)
		assert.Len(t, restored.StatusHistory(), 3)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}
