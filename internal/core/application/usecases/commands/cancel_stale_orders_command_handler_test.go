package commands_test

import (
	"testing"
	"time"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stalePendingOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), 1)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		time.Now().Add(-2*time.Hour), order.Pending, nil, []order.Line{line},
	)
	require.NoError(t, err)
	return aggregate
}

func TestCancelStaleOrdersCommandHandler_Handle_CancelsAll(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelStaleOrdersCommand(time.Hour)
	require.NoError(t, err)

	first := stalePendingOrder(t)
	second := stalePendingOrder(t)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetPendingBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first, second}, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, first.ID(), order.Pending, order.Cancelled,
			(*string)(nil)).Return(nil).Once(),
		orderRepo.On("UpdateStatus", ctx, second.ID(), order.Pending, order.Cancelled,
			(*string)(nil)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelStaleOrdersCommandHandler(factory, discardLogger())
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_SkipsClaimedOrder(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelStaleOrdersCommand(time.Hour)
	require.NoError(t, err)

	first := stalePendingOrder(t)
	second := stalePendingOrder(t)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetPendingBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first, second}, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, first.ID(), order.Pending, order.Cancelled,
			(*string)(nil)).Return(errs.NewConflictError("order is no longer pending")).Once(),
		orderRepo.On("UpdateStatus", ctx, second.ID(), order.Pending, order.Cancelled,
			(*string)(nil)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelStaleOrdersCommandHandler(factory, discardLogger())
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingToCancel(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelStaleOrdersCommand(time.Hour)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetPendingBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelStaleOrdersCommandHandler(factory, discardLogger())
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, cancelled)
}

func TestNewCancelStaleOrdersCommand_RejectsNonPositiveAge(t *testing.T) {
	_, err := commands.NewCancelStaleOrdersCommand(0)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
