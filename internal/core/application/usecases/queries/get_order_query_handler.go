package queries

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// GetOrderQueryHandler returns a single order.
type GetOrderQueryHandler struct {
	orders OrderReader
}

// NewGetOrderQueryHandler creates a handler reading through orders.
func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns order.ErrOrderNotFound (as an errs.ErrObjectNotFound) for an unknown id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orders.FindByID(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OrderResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"orderId", query.OrderID().String(), order.ErrOrderNotFound,
		)
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(o), nil
}
