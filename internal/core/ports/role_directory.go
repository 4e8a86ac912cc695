package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// RoleDirectory resolves user identity data from the sibling user service.
// Calls are synchronous and fallible: an unreachable or inconsistent directory
// is a dependency failure, a plain miss is a not-found — callers distinguish
// the two through the error kind, never by a defaulted value.
type RoleDirectory interface {
	// RoleByUserID resolves the role a user holds.
	RoleByUserID(ctx context.Context, userID kernel.UUID) (actor.Role, error)

	// RestaurantByEmployee resolves the restaurant an employee is affiliated
	// with. A user without an affiliation yields a not-found error.
	RestaurantByEmployee(ctx context.Context, userID kernel.UUID) (kernel.UUID, error)
}

// OrderNotifier delivers order status notifications to the customer-facing
// side channel. Fire and forget: use cases log delivery failures and proceed.
type OrderNotifier interface {
	// OrderStatusChanged announces the order's new status, including the
	// handoff PIN when the order turns READY.
	OrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}
