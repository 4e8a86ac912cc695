package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
)

// MarkOrderReadyCommandHandler moves a claimed order to READY, assigns the
// security PIN the customer will present at handoff, and announces the change
// through the notifier. Notification is fire and forget: a delivery failure
// is logged and the use case still succeeds.
type MarkOrderReadyCommandHandler struct {
	uowFactory    OrderUoWFactory
	roleDirectory ports.RoleDirectory
	notifier      ports.OrderNotifier
	logger        *slog.Logger
}

// NewMarkOrderReadyCommandHandler creates a handler for ready announcements.
func NewMarkOrderReadyCommandHandler(
	uowFactory OrderUoWFactory,
	roleDirectory ports.RoleDirectory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory:    uowFactory,
		roleDirectory: roleDirectory,
		notifier:      notifier,
		logger:        logger.With("component", "mark_order_ready"),
	}
}

// Handle processes the ready announcement.
// The transition IN_PREPARATION -> READY is written conditionally so a
// concurrent transition of the same order surfaces as a conflict.
func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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

	pin := newSecurityPIN()
	if err = aggregate.MarkReady(pin); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, cmd.OrderID(), order.InPreparation, order.Ready, &pin); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.OrderStatusChanged(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "Order ready notification failed",
			"order_id", cmd.OrderID().String(), "error", err)
	}

	return nil
}

// newSecurityPIN produces the 4-digit handoff code.
func newSecurityPIN() string {
	return fmt.Sprintf("%04d", rand.IntN(10000))
}
