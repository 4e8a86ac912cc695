package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// CreateRestaurantCommandHandler onboards a new restaurant.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	directory  ports.RoleDirectory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant onboarding.
func NewCreateRestaurantCommandHandler(
	uowFactory RestaurantUoWFactory,
	directory ports.RoleDirectory,
) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the onboarding. The designated owner must resolve to the
// OWNER role in the user directory: a user the directory does not know or a
// user holding another role makes the owner field invalid, an unreachable
// directory is a dependency failure. NIT and name uniqueness are checked as
// two independent queries so each collision is reported under its own field;
// database unique constraints back both under concurrency.
func (h CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := cmd.Actor().RequireRole(actor.Admin); err != nil {
		return nil, err
	}

	if err := h.requireOwnerRole(ctx, cmd.OwnerID()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()

	nitTaken, err := restaurantRepo.ExistsByNIT(ctx, cmd.NIT())
	if err != nil {
		return nil, err
	}
	if nitTaken {
		return nil, errs.NewConflictError("a restaurant with this NIT already exists")
	}

	nameTaken, err := restaurantRepo.ExistsByName(ctx, cmd.Name())
	if err != nil {
		return nil, err
	}
	if nameTaken {
		return nil, errs.NewConflictError("a restaurant with this name already exists")
	}

	entity, err := restaurant.NewRestaurant(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.NIT(),
		cmd.Address(),
		cmd.Phone(),
		cmd.LogoURL(),
		cmd.OwnerID(),
	)
	if err != nil {
		return nil, err
	}

	if err = restaurantRepo.Add(ctx, entity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entity, nil
}

func (h CreateRestaurantCommandHandler) requireOwnerRole(
	ctx context.Context,
	ownerID kernel.UUID,
) error {
	role, err := h.directory.RoleByUserID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("owner id", err)
		}
		if errors.Is(err, errs.ErrDependencyFailure) {
			return err
		}
		return errs.NewDependencyFailureErrorWithCause("user directory", err)
	}

	if role != actor.Owner {
		return errs.NewValueIsInvalidErrorWithCause("owner id",
			errs.NewNotAuthorizedError("user does not hold the OWNER role"))
	}

	return nil
}
