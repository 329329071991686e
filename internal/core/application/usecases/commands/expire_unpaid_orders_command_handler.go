package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// ExpireUnpaidOrdersCommandHandler cancels stale unpaid orders in one transaction.
// Cancellation goes through Order.Cancel so every expired order gets its
// Cancelled history entry like a user initiated cancel.
type ExpireUnpaidOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewExpireUnpaidOrdersCommandHandler creates a handler that measures age against kernel.Now.
func NewExpireUnpaidOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireUnpaidOrdersCommandHandler {
	return ExpireUnpaidOrdersCommandHandler{
		uowFactory: uowFactory,
		now:        kernel.Now,
	}
}

// Handle returns the cancelled orders.
func (h ExpireUnpaidOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ExpireUnpaidOrdersCommand,
) ([]*order.Order, error) {
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
	stale, err := orderRepo.FindByStatusCreatedBefore(ctx, order.Created, h.now().Add(-cmd.TTL()))
	if err != nil {
		return nil, err
	}

	expired := make([]*order.Order, 0, len(stale))
	for _, o := range stale {
		if err = o.Cancel(); err != nil {
			return nil, err
		}
		if err = orderRepo.Save(ctx, o); err != nil {
			return nil, err
		}
		expired = append(expired, o)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return expired, nil
}
