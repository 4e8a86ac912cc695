package commands_test

import (
	"testing"
	"time"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T, restaurantID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), 1)
	require.NoError(t, err)

	var chefID *kernel.UUID
	if status != order.Pending {
		chef := kernel.NewUUID()
		chefID = &chef
	}

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), restaurantID, chefID,
		time.Now(), status, nil, []order.Line{line},
	)
	require.NoError(t, err)
	return aggregate
}

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	employee, err := actor.NewActor(kernel.NewUUID(), actor.Employee)
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	aggregate := testOrder(t, restaurantID, order.Pending)

	cmd, err := commands.NewClaimOrderCommand(employee, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	directory := new(MockRoleDirectory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		directory.On("RestaurantByEmployee", ctx, employee.UserID()).Return(restaurantID, nil).Once(),
		orderRepo.On("AssignChef", ctx, aggregate.ID(), employee.UserID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, directory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	directory.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_NotEmployee(t *testing.T) {
	ctx := t.Context()

	customer, err := actor.NewActor(kernel.NewUUID(), actor.Customer)
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	aggregate := testOrder(t, restaurantID, order.Pending)

	cmd, err := commands.NewClaimOrderCommand(customer, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	directory := new(MockRoleDirectory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, directory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	directory.AssertNotCalled(t, "RestaurantByEmployee", ctx, customer.UserID())
}

func TestClaimOrderCommandHandler_Handle_NotAffiliated(t *testing.T) {
	ctx := t.Context()

	employee, err := actor.NewActor(kernel.NewUUID(), actor.Employee)
	require.NoError(t, err)

	aggregate := testOrder(t, kernel.NewUUID(), order.Pending)

	cmd, err := commands.NewClaimOrderCommand(employee, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	directory := new(MockRoleDirectory)

	otherRestaurant := kernel.NewUUID()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		directory.On("RestaurantByEmployee", ctx, employee.UserID()).Return(otherRestaurant, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, directory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	orderRepo.AssertNotCalled(t, "AssignChef", ctx, aggregate.ID(), employee.UserID())
}

func TestClaimOrderCommandHandler_Handle_UnresolvedAffiliation(t *testing.T) {
	ctx := t.Context()

	employee, err := actor.NewActor(kernel.NewUUID(), actor.Employee)
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	aggregate := testOrder(t, restaurantID, order.Pending)

	cmd, err := commands.NewClaimOrderCommand(employee, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	directory := new(MockRoleDirectory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		directory.On("RestaurantByEmployee", ctx, employee.UserID()).
			Return(kernel.UUID{}, errs.NewObjectNotFoundError("employee", employee.UserID())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, directory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestClaimOrderCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := t.Context()

	employee, err := actor.NewActor(kernel.NewUUID(), actor.Employee)
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	aggregate := testOrder(t, restaurantID, order.InPreparation)

	cmd, err := commands.NewClaimOrderCommand(employee, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	directory := new(MockRoleDirectory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		directory.On("RestaurantByEmployee", ctx, employee.UserID()).Return(restaurantID, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, directory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	orderRepo.AssertNotCalled(t, "AssignChef", ctx, aggregate.ID(), employee.UserID())
}

func TestClaimOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()

	employee, err := actor.NewActor(kernel.NewUUID(), actor.Employee)
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	aggregate := testOrder(t, restaurantID, order.Pending)

	cmd, err := commands.NewClaimOrderCommand(employee, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	directory := new(MockRoleDirectory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		directory.On("RestaurantByEmployee", ctx, employee.UserID()).Return(restaurantID, nil).Once(),
		orderRepo.On("AssignChef", ctx, aggregate.ID(), employee.UserID()).
			Return(errs.NewConflictError("order is no longer claimable")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, directory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestClaimOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	employee, err := actor.NewActor(kernel.NewUUID(), actor.Employee)
	require.NoError(t, err)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewClaimOrderCommand(employee, orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	directory := new(MockRoleDirectory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, directory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
