package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRestaurant(t *testing.T, id, ownerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	entity, err := restaurant.NewRestaurant(
		id, "La Plaza", 900123456, "Cra 7 # 12-34", "+573158796926",
		"https://img.example/laplaza.png", ownerID,
	)
	require.NoError(t, err)
	return entity
}

func newCreateDishCommand(t *testing.T, owner actor.Actor, restaurantID, categoryID kernel.UUID) commands.CreateDishCommand {
	t.Helper()
	cmd, err := commands.NewCreateDishCommand(
		owner, "Ajiaco", 28000, "Chicken and potato soup",
		"https://img.example/ajiaco.png", categoryID, restaurantID,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateDishCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	owner, err := actor.NewActor(kernel.NewUUID(), actor.Owner)
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	categoryID := kernel.NewUUID()
	cmd := newCreateDishCommand(t, owner, restaurantID, categoryID)

	dishRepo := new(MockDishRepository)
	restaurantRepo := new(MockRestaurantRepository)
	categoryRepo := new(MockCategoryRepository)
	uow := new(MockDishUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).
			Return(testRestaurant(t, restaurantID, owner.UserID()), nil).Once(),
		uow.On("CategoryRepository").Return(categoryRepo).Once(),
		categoryRepo.On("Exists", ctx, categoryID).Return(true, nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("ExistsByNameAndRestaurant", ctx, "Ajiaco", restaurantID).Return(false, nil).Once(),
		dishRepo.On("Add", ctx, mock.AnythingOfType("*dish.Dish")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDishUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDishCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.IsActive())
	assert.Equal(t, "Ajiaco", created.Name())
	assert.Equal(t, restaurantID, created.RestaurantID())
	uow.AssertExpectations(t)
	dishRepo.AssertExpectations(t)
}

func TestCreateDishCommandHandler_Handle_WrongRole(t *testing.T) {
	ctx := t.Context()

	customer, err := actor.NewActor(kernel.NewUUID(), actor.Customer)
	require.NoError(t, err)

	cmd := newCreateDishCommand(t, customer, kernel.NewUUID(), kernel.NewUUID())

	factory := new(MockDishUoWFactory)
	handler := commands.NewCreateDishCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDishCommandHandler_Handle_ForeignRestaurant(t *testing.T) {
	ctx := t.Context()

	owner, err := actor.NewActor(kernel.NewUUID(), actor.Owner)
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	cmd := newCreateDishCommand(t, owner, restaurantID, kernel.NewUUID())

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockDishUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).
			Return(testRestaurant(t, restaurantID, kernel.NewUUID()), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDishUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDishCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	uow.AssertNotCalled(t, "DishRepository")
}

func TestCreateDishCommandHandler_Handle_UnknownCategory(t *testing.T) {
	ctx := t.Context()

	owner, err := actor.NewActor(kernel.NewUUID(), actor.Owner)
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	categoryID := kernel.NewUUID()
	cmd := newCreateDishCommand(t, owner, restaurantID, categoryID)

	restaurantRepo := new(MockRestaurantRepository)
	categoryRepo := new(MockCategoryRepository)
	uow := new(MockDishUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).
			Return(testRestaurant(t, restaurantID, owner.UserID()), nil).Once(),
		uow.On("CategoryRepository").Return(categoryRepo).Once(),
		categoryRepo.On("Exists", ctx, categoryID).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDishUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDishCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateDishCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()

	owner, err := actor.NewActor(kernel.NewUUID(), actor.Owner)
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	categoryID := kernel.NewUUID()
	cmd := newCreateDishCommand(t, owner, restaurantID, categoryID)

	dishRepo := new(MockDishRepository)
	restaurantRepo := new(MockRestaurantRepository)
	categoryRepo := new(MockCategoryRepository)
	uow := new(MockDishUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).
			Return(testRestaurant(t, restaurantID, owner.UserID()), nil).Once(),
		uow.On("CategoryRepository").Return(categoryRepo).Once(),
		categoryRepo.On("Exists", ctx, categoryID).Return(true, nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("ExistsByNameAndRestaurant", ctx, "Ajiaco", restaurantID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDishUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDishCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	dishRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestNewCreateDishCommand_FieldValidation(t *testing.T) {
	owner, err := actor.NewActor(kernel.NewUUID(), actor.Owner)
	require.NoError(t, err)

	restaurantID := kernel.NewUUID()
	categoryID := kernel.NewUUID()

	t.Run("blank name", func(t *testing.T) {
		_, err := commands.NewCreateDishCommand(
			owner, "", 28000, "desc", "https://img.example/a.png", categoryID, restaurantID)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-positive price", func(t *testing.T) {
		_, err := commands.NewCreateDishCommand(
			owner, "Ajiaco", 0, "desc", "https://img.example/a.png", categoryID, restaurantID)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := commands.NewCreateDishCommand(
			owner, "Ajiaco", 28000, "desc", "https://img.example/a.png", kernel.UUID{}, restaurantID)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
