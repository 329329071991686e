package queries

import (
	"context"
)

// ListUsersQueryHandler lists users, oldest registration first.
type ListUsersQueryHandler struct {
	users UserReader
}

// NewListUsersQueryHandler creates a handler reading through users.
func NewListUsersQueryHandler(users UserReader) ListUsersQueryHandler {
	return ListUsersQueryHandler{users: users}
}

// Handle returns all users, oldest registration first.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserResponse, 0, len(found))
	for _, u := range found {
		out = append(out, NewUserResponse(u))
	}
	return out, nil
}
