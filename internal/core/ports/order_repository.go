// Package ports defines the contracts between the core and its collaborators:
// repositories, the role directory, and the order notifier. The interfaces
// enable dependency inversion and testability; the core holds no cache and
// every read goes through a port.
package ports

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Conditional updates exist because claims and status transitions race:
// pre-checks in the use case are advisory, the write itself is the arbiter.
type OrderRepository interface {
	// Add persists a new order with its lines as one atomic write; the header
	// and lines must never be partially visible. A uniqueness violation on the
	// customer's active order surfaces as a conflict error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByStatusAndRestaurant retrieves one page of orders with the exact
	// status at the restaurant. Ordering is stable across pages for a fixed
	// snapshot. Page numbers start at 0.
	GetByStatusAndRestaurant(
		ctx context.Context,
		status order.Status,
		restaurantID kernel.UUID,
		page, pageSize int,
	) ([]*order.Order, error)

	// HasActiveOrder reports whether the customer currently has an order in
	// PENDING, IN_PREPARATION, or READY status.
	HasActiveOrder(ctx context.Context, customerID kernel.UUID) (bool, error)

	// AssignChef atomically claims the order for the chef: the write succeeds
	// only if the order is still PENDING with no chef, moving it to
	// IN_PREPARATION. A lost race returns a conflict error.
	AssignChef(ctx context.Context, orderID, chefID kernel.UUID) error

	// UpdateStatus atomically transitions the order from one status to another,
	// optionally writing the security PIN. The write succeeds only if the
	// order is still in the from status; otherwise a conflict error is
	// returned.
	UpdateStatus(ctx context.Context, orderID kernel.UUID, from, to order.Status, pin *string) error

	// GetPendingBefore retrieves PENDING orders created before the cutoff,
	// used by the stale-order cleanup.
	GetPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
