package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
)

// DeliverOrderCommandHandler completes the handoff of a READY order.
// The presented PIN must match the stored one; a mismatch is an authorization
// failure so a wrong code can never be confused with a missing order.
type DeliverOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	roleDirectory ports.RoleDirectory
}

// NewDeliverOrderCommandHandler creates a handler for order handoffs.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	roleDirectory ports.RoleDirectory,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory:    uowFactory,
		roleDirectory: roleDirectory,
	}
}

// Handle processes the handoff.
// The transition READY -> DELIVERED is written conditionally, so a concurrent
// transition of the same order surfaces as a conflict. DELIVERED is terminal.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	if err = requireAffiliatedEmployee(ctx, h.roleDirectory, cmd.Actor(), aggregate.RestaurantID()); err != nil {
		return err
	}

	if err = aggregate.Deliver(cmd.PIN()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, cmd.OrderID(), order.Ready, order.Delivered, nil); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
