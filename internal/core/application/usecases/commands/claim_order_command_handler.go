package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// ClaimOrderCommandHandler orchestrates the employee claim of a pending order.
// Pre-checks (existence, affiliation, claimability) run first for precise
// errors, but the decisive step is the conditional write: it only succeeds if
// the order is still PENDING and unassigned, so two employees racing for the
// same order produce exactly one winner and one conflict.
type ClaimOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	roleDirectory ports.RoleDirectory
}

// NewClaimOrderCommandHandler creates a handler for order claim operations.
func NewClaimOrderCommandHandler(
	uowFactory OrderUoWFactory,
	roleDirectory ports.RoleDirectory,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory:    uowFactory,
		roleDirectory: roleDirectory,
	}
}

// Handle processes the claim command.
// The order must exist, the actor must be an employee of the order's
// restaurant, and the order must be PENDING with no chef assigned; claim
// conflicts are distinct from malformed input. Losing the race between the
// pre-check read and the conditional write also surfaces as a conflict.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	requester := cmd.Actor()
	if err = requireAffiliatedEmployee(ctx, h.roleDirectory, requester, aggregate.RestaurantID()); err != nil {
		return err
	}

	// Advisory pre-check for a precise error message; the write re-checks.
	if err = aggregate.Claim(requester.UserID()); err != nil {
		return err
	}

	if err = orderRepo.AssignChef(ctx, cmd.OrderID(), requester.UserID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
