package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

// CancelOrderCommandHandler withdraws a customer's own PENDING order.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation.
// The actor must be the customer who placed the order; cancelling somebody
// else's order is an authorization failure even when the order exists.
// PENDING -> CANCELLED is written conditionally so a claim racing the
// cancellation produces either a cooked order or a cancelled one, never both.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	requester := cmd.Actor()
	if err := requester.RequireRole(actor.Customer); err != nil {
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

	if !aggregate.CustomerID().IsEqual(requester.UserID()) {
		return errs.NewNotAuthorizedError("order belongs to another customer")
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, cmd.OrderID(), order.Pending, order.Cancelled, nil); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
