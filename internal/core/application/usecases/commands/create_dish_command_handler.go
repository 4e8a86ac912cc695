package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// CreateDishCommandHandler adds a dish to a restaurant's catalog.
type CreateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(uowFactory DishUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish creation. Ownership is checked against the
// restaurant entity read inside the transaction, never trusted from the
// request. The (name, restaurant) pair must be free; the database unique
// constraint backs the pre-check under concurrency.
func (h CreateDishCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDishCommand,
) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	requester := cmd.Actor()
	if err := requester.RequireRole(actor.Owner); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantEntity, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	if !restaurantEntity.IsOwnedBy(requester.UserID()) {
		return nil, errs.NewNotAuthorizedError("restaurant belongs to another owner")
	}

	categoryExists, err := uow.CategoryRepository().Exists(ctx, cmd.CategoryID())
	if err != nil {
		return nil, err
	}
	if !categoryExists {
		return nil, errs.NewObjectNotFoundError("category id", cmd.CategoryID())
	}

	dishRepo := uow.DishRepository()

	taken, err := dishRepo.ExistsByNameAndRestaurant(ctx, cmd.Name(), cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError("restaurant already has a dish with this name")
	}

	entity, err := dish.NewDish(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Price(),
		cmd.Description(),
		cmd.ImageURL(),
		cmd.CategoryID(),
		cmd.RestaurantID(),
	)
	if err != nil {
		return nil, err
	}

	if err = dishRepo.Add(ctx, entity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entity, nil
}
