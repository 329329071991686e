package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewPayOrderCommand, NewCancelOrderCommand, " +
		"NewShipOrderCommand or NewCompleteOrderCommand constructor",
)

// OrderAction names a lifecycle operation on an order.
type OrderAction string

const (
	PayOrder      OrderAction = "pay"
	CancelOrder   OrderAction = "cancel"
	ShipOrder     OrderAction = "ship"
	CompleteOrder OrderAction = "complete"
)

// ParseOrderAction maps "pay", "cancel", "ship" and "complete" to their action.
func ParseOrderAction(s string) (OrderAction, error) {
	switch a := OrderAction(s); a {
	case PayOrder, CancelOrder, ShipOrder, CompleteOrder:
		return a, nil
	default:
		return "", errs.NewValueIsInvalidError("order action " + s)
	}
}

// ChangeOrderStatusCommand asks for one lifecycle transition of an order.
//
// Example:
//
//	cmd, err := NewPayOrderCommand(orderID)
//	if err != nil {
//	    return err
//	}
//
//	paid, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderAlreadyPaid) {
//	    // nothing to do
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  OrderAction

	guard guard.ConstructorGuard
}

// NewPayOrderCommand builds a PayOrder command.
func NewPayOrderCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return NewChangeOrderStatusCommand(orderID, PayOrder)
}

// NewCancelOrderCommand builds a CancelOrder command.
func NewCancelOrderCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return NewChangeOrderStatusCommand(orderID, CancelOrder)
}

// NewShipOrderCommand builds a ShipOrder command.
func NewShipOrderCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return NewChangeOrderStatusCommand(orderID, ShipOrder)
}

// NewCompleteOrderCommand builds a CompleteOrder command.
func NewCompleteOrderCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return NewChangeOrderStatusCommand(orderID, CompleteOrder)
}

// NewChangeOrderStatusCommand builds the command for an action chosen at runtime,
// e.g. from a URL segment.
func NewChangeOrderStatusCommand(orderID kernel.UUID, action OrderAction) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the requested transition.
func (c ChangeOrderStatusCommand) Action() OrderAction {
	return c.action
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setAction(action OrderAction) error {
	parsed, err := ParseOrderAction(string(action))
	if err != nil {
		return err
	}

	c.action = parsed
	return nil
}
