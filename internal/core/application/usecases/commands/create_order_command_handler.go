package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Checks run in a fixed order, each failure short-circuiting the rest:
// the customer has no active order, the restaurant exists, and every line
// references an existing, active dish with a positive quantity.
type CreateOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a PlaceOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory PlaceOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted order.
// The order is written together with its lines as one unit; the one-active-
// order invariant is additionally backed by the persistence layer, so a
// concurrent second request from the same customer surfaces as a conflict.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	requester := cmd.Actor()
	if err := requester.RequireRole(actor.Customer); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	hasActive, err := orderRepo.HasActiveOrder(ctx, requester.UserID())
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, errs.NewConflictError("customer already has an active order")
	}

	restaurantExists, err := uow.RestaurantRepository().Exists(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if !restaurantExists {
		return nil, errs.NewObjectNotFoundError("restaurant", cmd.RestaurantID().String())
	}

	lines, err := h.buildLines(ctx, uow, cmd.Lines())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), requester.UserID(), cmd.RestaurantID(), time.Now(), lines)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// buildLines validates every requested line against the dish catalog and
// converts the drafts to domain lines. Each violation names the dish id.
func (h *CreateOrderCommandHandler) buildLines(
	ctx context.Context,
	uow PlaceOrderUoW,
	drafts []OrderLineDraft,
) ([]order.Line, error) {
	dishRepo := uow.DishRepository()

	lines := make([]order.Line, 0, len(drafts))
	for _, draft := range drafts {
		if draft.DishID.Validate() != nil {
			return nil, errs.NewValueIsRequiredError("dish id")
		}

		entity, err := dishRepo.Get(ctx, draft.DishID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", draft.DishID.String())
		}
		if err != nil {
			return nil, err
		}

		if !entity.IsActive() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("dish %s", draft.DishID),
				errors.New("dish is not active"),
			)
		}

		line, err := order.NewLine(draft.DishID, draft.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
