package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// requireAffiliatedEmployee verifies the requester holds the EMPLOYEE role and
// is affiliated, per the role directory, with the given restaurant.
// A missing or mismatched affiliation is an authorization failure, not a
// not-found; an unreachable directory is a dependency failure.
func requireAffiliatedEmployee(
	ctx context.Context,
	directory ports.RoleDirectory,
	requester actor.Actor,
	restaurantID kernel.UUID,
) error {
	if err := requester.RequireRole(actor.Employee); err != nil {
		return err
	}

	affiliation, err := directory.RestaurantByEmployee(ctx, requester.UserID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errs.NewNotAuthorizedError("employee is not affiliated with any restaurant")
	case errors.Is(err, errs.ErrDependencyFailure):
		return err
	case err != nil:
		return errs.NewDependencyFailureErrorWithCause("role directory", err)
	}

	if !affiliation.IsEqual(restaurantID) {
		return errs.NewNotAuthorizedError("employee is not affiliated with this restaurant")
	}

	return nil
}
