package queries_test

import (
	"errors"
	"testing"
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetUserQueryHandler_Handle_ByID(t *testing.T) {
	ctx := t.Context()
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	stored := user.RestoreUser(kernel.NewUUID(), "alice@example.com", "Alice", createdAt)
	query, _ := queries.NewGetUserByIDQuery(stored.ID())

	users := new(MockUserReader)
	users.On("FindByID", ctx, stored.ID()).Return(stored, nil).Once()

	resp, err := queries.NewGetUserQueryHandler(users).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, queries.UserResponse{
		ID:        stored.ID(),
		Email:     "alice@example.com",
		Name:      "Alice",
		CreatedAt: createdAt,
	}, resp)
	users.AssertExpectations(t)
}

func TestGetUserQueryHandler_Handle_ByEmail(t *testing.T) {
	ctx := t.Context()
	stored, _ := user.NewUser("alice@example.com", "Alice")
	query, _ := queries.NewGetUserByEmailQuery("alice@example.com")

	users := new(MockUserReader)
	users.On("FindByEmail", ctx, "alice@example.com").Return(stored, nil).Once()

	resp, err := queries.NewGetUserQueryHandler(users).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, stored.ID(), resp.ID)
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGetUserQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	byID, _ := queries.NewGetUserByIDQuery(id)
	byEmail, _ := queries.NewGetUserByEmailQuery("ghost@example.com")

	users := new(MockUserReader)
	users.On("FindByID", ctx, id).Return(nil, errs.NewObjectNotFoundError("user", id.String()))
	users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, errs.NewObjectNotFoundError("user", "ghost@example.com"))
	handler := queries.NewGetUserQueryHandler(users)

	_, err := handler.Handle(ctx, byID)
	require.ErrorIs(t, err, user.ErrUserNotFound)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), id.String())

	_, err = handler.Handle(ctx, byEmail)
	require.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Contains(t, err.Error(), "ghost@example.com")
}

func TestGetUserQueryHandler_Handle_Errors(t *testing.T) {
	ctx := t.Context()
	users := new(MockUserReader)
	handler := queries.NewGetUserQueryHandler(users)

	_, err := handler.Handle(ctx, queries.GetUserQuery{})
	require.ErrorIs(t, err, queries.ErrGetUserQueryIsNotConstructed)

	id := kernel.NewUUID()
	query, _ := queries.NewGetUserByIDQuery(id)
	users.On("FindByID", ctx, id).Return(nil, errors.New("database error")).Once()

	_, err = handler.Handle(ctx, query)
	require.EqualError(t, err, "database error")
}
