package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

// CancelStaleOrdersCommandHandler sweeps PENDING orders nobody claimed in time.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order sweep.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_stale_orders"),
	}
}

// Handle cancels every PENDING order older than the command's max age and
// returns how many orders were cancelled. An order claimed while the sweep
// runs loses the conditional write and is skipped, not treated as a failure.
func (h CancelStaleOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelStaleOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	cutoff := time.Now().Add(-cmd.MaxAge())

	stale, err := orderRepo.GetPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0

	for _, aggregate := range stale {
		if cancelErr := aggregate.Cancel(); cancelErr != nil {
			continue
		}

		err = orderRepo.UpdateStatus(ctx, aggregate.ID(), order.Pending, order.Cancelled, nil)
		if err != nil {
			if errors.Is(err, errs.ErrConflict) {
				h.logger.InfoContext(ctx, "order claimed during sweep, skipping",
					"order_id", aggregate.ID().String())
				continue
			}
			return 0, err
		}

		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
