package queries

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"
)

// ListOrdersQueryHandler lists orders oldest first. Listing the orders of an
// unknown user fails with user.ErrUserNotFound rather than returning nothing.
type ListOrdersQueryHandler struct {
	users  UserReader
	orders OrderReader
}

// NewListOrdersQueryHandler creates a handler that checks the user exists
// before listing their orders.
func NewListOrdersQueryHandler(users UserReader, orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{users: users, orders: orders}
}

// Handle returns the matching orders. Listing the orders of an unknown user
// fails with user.ErrUserNotFound (as an errs.ErrObjectNotFound) instead of
// returning an empty list.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		found []*order.Order
		err   error
	)

	if userID := query.UserID(); userID != nil {
		if _, err = h.users.FindByID(ctx, *userID); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewObjectNotFoundErrorWithCause("userId", userID.String(), user.ErrUserNotFound)
			}
			return nil, err
		}
		found, err = h.orders.FindByUser(ctx, *userID)
	} else {
		found, err = h.orders.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return newOrderResponses(found), nil
}
