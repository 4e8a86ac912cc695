package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/pkg/errs"
)

// SetDishActiveCommandHandler enables or disables a dish.
type SetDishActiveCommandHandler struct {
	uowFactory DishUoWFactory
}

// NewSetDishActiveCommandHandler creates a handler for dish availability toggles.
func NewSetDishActiveCommandHandler(uowFactory DishUoWFactory) SetDishActiveCommandHandler {
	return SetDishActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle with the same ownership check as every other
// catalog mutation. Setting a dish to its current state is a no-op write.
func (h SetDishActiveCommandHandler) Handle(ctx context.Context, cmd SetDishActiveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	requester := cmd.Actor()
	if err := requester.RequireRole(actor.Owner); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dishRepo := uow.DishRepository()

	entity, err := dishRepo.Get(ctx, cmd.DishID())
	if err != nil {
		return err
	}

	restaurantEntity, err := uow.RestaurantRepository().Get(ctx, entity.RestaurantID())
	if err != nil {
		return err
	}

	if !restaurantEntity.IsOwnedBy(requester.UserID()) {
		return errs.NewNotAuthorizedError("restaurant belongs to another owner")
	}

	entity.SetActive(cmd.Active())

	if err = dishRepo.Update(ctx, entity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
