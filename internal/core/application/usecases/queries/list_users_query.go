package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery returns every registered user.
type ListUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewListUsersQuery lists every user.
func NewListUsersQuery() ListUsersQuery {
	return ListUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}
