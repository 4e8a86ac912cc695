package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
)

// DishRepository defines the persistence contract for dish entities.
type DishRepository interface {
	// Add persists a new dish. A duplicate (name, restaurant) pair surfaces
	// as a conflict error.
	Add(ctx context.Context, entity *dish.Dish) error

	// Update persists changes to an existing dish.
	Update(ctx context.Context, entity *dish.Dish) error

	// Get retrieves a dish by id.
	Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error)

	// Exists reports whether a dish with the id is persisted.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// ExistsByNameAndRestaurant reports whether the restaurant already has a
	// dish with the name.
	ExistsByNameAndRestaurant(ctx context.Context, name string, restaurantID kernel.UUID) (bool, error)
}
