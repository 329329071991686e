package order

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_newItem(t *testing.T) {
	orderID := kernel.NewUUID()

	tests := []struct {
		name     string
		product  string
		price    string
		quantity int
		wantErrs []error
	}{
		{name: "valid", product: "widget", price: "9.99", quantity: 3},
		{name: "free", product: "sticker", price: "0", quantity: 1},
		{name: "zero quantity", product: "widget", price: "1", quantity: 0,
			wantErrs: []error{ErrInvalidQuantity, errs.ErrValueIsOutOfRange}},
		{name: "negative quantity", product: "widget", price: "1", quantity: -1,
			wantErrs: []error{ErrInvalidQuantity}},
		{name: "negative price", product: "widget", price: "-0.01", quantity: 1,
			wantErrs: []error{ErrInvalidPrice, errs.ErrValueIsInvalid}},
		{name: "empty name", product: "", price: "1", quantity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := newItem(orderID, tt.product, decimal.RequireFromString(tt.price), tt.quantity)

			if len(tt.wantErrs) > 0 {
				for _, want := range tt.wantErrs {
					require.ErrorIs(t, err, want)
				}
				assert.Nil(t, item)
				return
			}

			require.NoError(t, err)
			assert.True(t, item.OrderID().IsEqual(orderID))
			assert.Equal(t, tt.product, item.ProductName())
			assert.Equal(t, tt.quantity, item.Quantity())
		})
	}
}

func TestItem_Subtotal(t *testing.T) {
	item := RestoreItem(kernel.NewUUID(), kernel.NewUUID(), "widget", decimal.RequireFromString("0.10"), 3)

	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("0.30")))
	assert.Equal(t, "0.3", item.Subtotal().String())
}
