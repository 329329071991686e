package commands_test

import (
	"errors"
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireUnpaidOrdersCommandHandler_Handle_CancelsStaleOrders(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewExpireUnpaidOrdersCommand(time.Hour)
	stale := []*order.Order{orderIn(t, order.Created), orderIn(t, order.Created)}
	cutoff := mock.MatchedBy(func(before time.Time) bool {
		return !before.After(time.Now().Add(-time.Hour)) && before.After(time.Now().Add(-time.Hour-time.Minute))
	})

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("FindByStatusCreatedBefore", ctx, order.Created, cutoff).Return(stale, nil).Once(),
		repo.On("Save", ctx, stale[0]).Return(nil).Once(),
		repo.On("Save", ctx, stale[1]).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireUnpaidOrdersCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, expired, 2)
	for _, o := range expired {
		assert.Equal(t, order.Cancelled, o.Status())
		history := o.StatusHistory()
		assert.Equal(t, order.Cancelled, history[len(history)-1].Status())
	}
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireUnpaidOrdersCommandHandler_Handle_NothingToExpire(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewExpireUnpaidOrdersCommand(time.Minute)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("FindByStatusCreatedBefore", ctx, order.Created, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireUnpaidOrdersCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, expired)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestExpireUnpaidOrdersCommandHandler_Handle_SaveErrorAbortsBatch(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewExpireUnpaidOrdersCommand(time.Hour)
	stale := []*order.Order{orderIn(t, order.Created), orderIn(t, order.Created)}

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("FindByStatusCreatedBefore", ctx, order.Created, mock.AnythingOfType("time.Time")).
			Return(stale, nil).Once(),
		repo.On("Save", ctx, stale[0]).Return(errors.New("save error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireUnpaidOrdersCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "save error")
	assert.Nil(t, expired)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
