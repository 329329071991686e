package queries

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"
)

// GetUserQueryHandler returns a single user.
type GetUserQueryHandler struct {
	users UserReader
}

// NewGetUserQueryHandler creates a handler reading through users.
func NewGetUserQueryHandler(users UserReader) GetUserQueryHandler {
	return GetUserQueryHandler{users: users}
}

// Handle returns user.ErrUserNotFound (as an errs.ErrObjectNotFound) when nothing matches.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	var (
		found *user.User
		err   error
		key   string
		value string
	)
	if id := query.ID(); id != nil {
		key, value = "userId", id.String()
		found, err = h.users.FindByID(ctx, *id)
	} else {
		key, value = "email", query.Email()
		found, err = h.users.FindByEmail(ctx, query.Email())
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return UserResponse{}, errs.NewObjectNotFoundErrorWithCause(key, value, user.ErrUserNotFound)
	}
	if err != nil {
		return UserResponse{}, err
	}

	return NewUserResponse(found), nil
}
