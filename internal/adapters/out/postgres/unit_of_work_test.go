package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/testdb"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockCommitObserver struct {
	mock.Mock
}

func (m *MockCommitObserver) AggregatesCommitted(ctx context.Context, aggregates []postgres_adapter.TrackedAggregate) {
	m.Called(ctx, aggregates)
}

func TestGormUnitOfWork_CommitNotifiesObservers(t *testing.T) {
	ctx := t.Context()
	observer := new(MockCommitObserver)
	factory := postgres_adapter.NewGormUnitOfWorkFactory(testdb.OpenSQLite(t), observer)

	u, err := user.NewUser("ada@example.com", "Ada")
	require.NoError(t, err)
	o, err := order.NewOrder(u.ID())
	require.NoError(t, err)

	observer.On("AggregatesCommitted", mock.Anything, mock.MatchedBy(func(got []postgres_adapter.TrackedAggregate) bool {
		return len(got) == 2 && got[0].ID.IsEqual(u.ID()) && got[1].ID.IsEqual(o.ID())
	})).Once()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.UserRepository().Save(ctx, u))
	require.NoError(t, uow.OrderRepository().Save(ctx, o))
	require.NoError(t, uow.Commit(ctx))

	observer.AssertExpectations(t)
	assert.Empty(t, uow.(*postgres_adapter.GormUnitOfWork).TrackedAggregates())
}

func TestGormUnitOfWork_RollbackSkipsObservers(t *testing.T) {
	ctx := t.Context()
	observer := new(MockCommitObserver)
	db := testdb.OpenSQLite(t)
	factory := postgres_adapter.NewGormUnitOfWorkFactory(db, observer)

	o, err := order.NewOrder(kernel.NewUUID())
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Save(ctx, o))
	require.Len(t, uow.(*postgres_adapter.GormUnitOfWork).TrackedAggregates(), 1)
	require.NoError(t, uow.Rollback(ctx))

	observer.AssertNotCalled(t, "AggregatesCommitted", mock.Anything, mock.Anything)
	assert.Empty(t, uow.(*postgres_adapter.GormUnitOfWork).TrackedAggregates())

	_, err = factory.Create().OrderRepository().FindByID(ctx, o.ID())
	require.Error(t, err)
}

func TestGormUnitOfWork_EmptyCommitSkipsObservers(t *testing.T) {
	ctx := t.Context()
	observer := new(MockCommitObserver)
	factory := postgres_adapter.NewGormUnitOfWorkFactory(testdb.OpenSQLite(t), observer)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))

	observer.AssertNotCalled(t, "AggregatesCommitted", mock.Anything, mock.Anything)
}

func TestGormUnitOfWork_WithoutTransaction(t *testing.T) {
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(testdb.OpenSQLite(t))

	uow := factory.Create()
	require.ErrorIs(t, uow.Commit(ctx), gorm.ErrInvalidTransaction)
	require.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	u, err := user.NewUser("solo@example.com", "")
	require.NoError(t, err)
	require.NoError(t, uow.UserRepository().Save(ctx, u))

	stored, err := factory.Create().UserRepository().FindByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "solo@example.com", stored.Email())
}
