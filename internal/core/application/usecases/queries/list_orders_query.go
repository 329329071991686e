package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery or NewListUserOrdersQuery constructor",
)

// ListOrdersQuery lists all orders, or only one user's orders.
type ListOrdersQuery struct {
	userID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery lists every order.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListUserOrdersQuery lists the orders of one user.
func NewListUserOrdersQuery(userID kernel.UUID) (ListOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{userID: &userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID is nil when all orders are listed.
func (q ListOrdersQuery) UserID() *kernel.UUID {
	return q.userID
}
