// Package commands contains the business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: an immutable command value built
// through a validating constructor, and a handler that checks authorization,
// consults the ports, and persists the next state within a transaction.
package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler names the narrowest composition it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DishRepoFactory provides access to the dish repository within a transaction.
	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// claiming, readying, delivering, and cancelling orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW manages transactions for order creation, which reads the
	// dish and restaurant repositories for existence and activity checks.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		DishRepoFactory
		RestaurantRepoFactory
	}

	// PlaceOrderUoWFactory creates new place-order unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// DishUoW manages transactions for dish catalog operations, which validate
	// ownership against the restaurant and existence against the category.
	DishUoW interface {
		TxManager
		DishRepoFactory
		RestaurantRepoFactory
		CategoryRepoFactory
	}

	// DishUoWFactory creates new dish unit of work instances.
	DishUoWFactory interface {
		Create() DishUoW
	}

	// RestaurantUoW manages transactions for restaurant onboarding.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}
)
