package commands

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"
)

// CreateOrderCommandHandler opens new orders in Created status.
// The owner must exist; the lookup runs in the same transaction as the insert.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(userID)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, user.ErrUserNotFound) {
//	    // unknown customer
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler that checks the user and
// stores the order in the same unit of work.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	owner, err := uow.UserRepository().FindByID(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundErrorWithCause("userId", cmd.UserID().String(), user.ErrUserNotFound)
	}
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(owner.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Save(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
