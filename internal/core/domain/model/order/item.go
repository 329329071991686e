package order

import (
	"errors"
	"fmt"
	"math"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidQuantity is the cause of the out of range error for a quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")

	// ErrInvalidPrice is the cause of the validation error for a negative unit price.
	ErrInvalidPrice = errors.New("price must not be negative")
)

// Item is one line of an order. Items are immutable once added.
type Item struct {
	id          kernel.UUID
	orderID     kernel.UUID
	productName string
	price       decimal.Decimal
	quantity    int
}

// newItem validates price and quantity and reports every failure at once.
func newItem(orderID kernel.UUID, productName string, price decimal.Decimal, quantity int) (*Item, error) {
	item := &Item{
		id:          kernel.NewUUID(),
		orderID:     orderID,
		productName: productName,
	}

	if err := errors.Join(
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rehydrates a stored item without validation.
func RestoreItem(id, orderID kernel.UUID, productName string, price decimal.Decimal, quantity int) *Item {
	return &Item{
		id:          id,
		orderID:     orderID,
		productName: productName,
		price:       price,
		quantity:    quantity,
	}
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the order the item belongs to.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductName returns the product name as it was given.
func (i *Item) ProductName() string {
	return i.productName
}

// Price returns the unit price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Subtotal is price * quantity, computed exactly.
func (i *Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%w: %s", ErrInvalidPrice, price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, 1, math.MaxInt, ErrInvalidQuantity)
	}
	i.quantity = quantity
	return nil
}
