package commands

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// AddOrderItemCommandHandler appends an item to a stored order.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler that opens one unit of work per call.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, adds the item and saves the order with its new total.
// Any domain failure leaves the stored order untouched.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*order.Order, error) {
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

	if _, err = o.AddItem(cmd.ProductName(), cmd.Price(), cmd.Quantity()); err != nil {
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

func loadOrder(ctx context.Context, repo ports.OrderRepository, id kernel.UUID) (*order.Order, error) {
	o, err := repo.FindByID(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundErrorWithCause("orderId", id.String(), order.ErrOrderNotFound)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}
