package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/pkg/errs"
)

// UpdateDishCommandHandler changes a dish's price or description.
type UpdateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

// NewUpdateDishCommandHandler creates a handler for dish modifications.
func NewUpdateDishCommandHandler(uowFactory DishUoWFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the modification. The dish and its restaurant are both
// re-read inside the transaction; the requester must be the restaurant's
// recorded owner.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
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

	dishRepo := uow.DishRepository()

	entity, err := dishRepo.Get(ctx, cmd.DishID())
	if err != nil {
		return nil, err
	}

	restaurantEntity, err := uow.RestaurantRepository().Get(ctx, entity.RestaurantID())
	if err != nil {
		return nil, err
	}

	if !restaurantEntity.IsOwnedBy(requester.UserID()) {
		return nil, errs.NewNotAuthorizedError("restaurant belongs to another owner")
	}

	if price := cmd.Price(); price != nil {
		if err = entity.ChangePrice(*price); err != nil {
			return nil, err
		}
	}

	if description := cmd.Description(); description != nil {
		if err = entity.ChangeDescription(*description); err != nil {
			return nil, err
		}
	}

	if err = dishRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entity, nil
}
