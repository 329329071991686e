package queries

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserByIDQuery or NewGetUserByEmailQuery constructor",
)

// GetUserQuery looks a user up either by id or by email, never both.
//
// Example:
//
//	query, err := NewGetUserByEmailQuery("alice@example.com")
//	if err != nil {
//	    return err
//	}
//
//	found, err := handler.Handle(ctx, query)
//	if errors.Is(err, user.ErrUserNotFound) {
//	    // unknown address
//	}
type GetUserQuery struct {
	id    *kernel.UUID
	email string

	guard guard.ConstructorGuard
}

// NewGetUserByIDQuery creates a lookup by user id.
func NewGetUserByIDQuery(id kernel.UUID) (GetUserQuery, error) {
	if err := id.Validate(); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetUserByEmailQuery creates a lookup by exact email. The address is
// trimmed but not format-checked, so a malformed one is simply not found.
func NewGetUserByEmailQuery(email string) (GetUserQuery, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return GetUserQuery{}, errs.NewValueIsRequiredError("email")
	}
	return GetUserQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// ID returns the id to look up, or nil for an email lookup.
func (q GetUserQuery) ID() *kernel.UUID {
	return q.id
}

// Email returns the address to look up, or "" for an id lookup.
func (q GetUserQuery) Email() string {
	return q.email
}
