package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler runs pay, cancel, ship and complete.
// The order decides whether the transition is legal; a refused transition
// is returned unchanged and nothing is written.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler that opens one unit of work per call.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition and saves it with the new
// history entry.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := loadOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = apply(o, cmd.Action()); err != nil {
		return nil, err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func apply(o *order.Order, action OrderAction) error {
	switch action {
	case PayOrder:
		return o.Pay()
	case CancelOrder:
		return o.Cancel()
	case ShipOrder:
		return o.Ship()
	case CompleteOrder:
		return o.Complete()
	default:
		return order.ErrInvalidTransition
	}
}
