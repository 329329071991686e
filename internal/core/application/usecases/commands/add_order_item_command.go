package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand carries one order line. Price and quantity rules are
// enforced by the order itself so they hold for every caller.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productName string
	price       decimal.Decimal
	quantity    int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand checks the order id and trims the product name.
//
// Returns:
//   - AddOrderItemCommand: The validated command
//   - error: Validation error if orderID is invalid
func NewAddOrderItemCommand(
	orderID kernel.UUID,
	productName string,
	price decimal.Decimal,
	quantity int,
) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		productName: strings.TrimSpace(productName),
		price:       price,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the order the item is added to.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductName returns the trimmed product name.
func (c AddOrderItemCommand) ProductName() string {
	return c.productName
}

// Price returns the unit price.
func (c AddOrderItemCommand) Price() decimal.Decimal {
	return c.price
}

// Quantity returns the number of units.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
