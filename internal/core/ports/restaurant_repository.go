package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/category"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant entities.
// Restaurants are write-once from the core's perspective.
type RestaurantRepository interface {
	// Add persists a new restaurant. Duplicate NIT or name surfaces as a
	// conflict error.
	Add(ctx context.Context, entity *restaurant.Restaurant) error

	// Get retrieves a restaurant by id.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// Exists reports whether a restaurant with the id is persisted.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// ExistsByNIT reports whether any restaurant already uses the tax id.
	ExistsByNIT(ctx context.Context, nit int64) (bool, error)

	// ExistsByName reports whether any restaurant already uses the name.
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// CategoryRepository provides read-only access to the category reference data.
type CategoryRepository interface {
	// Get retrieves a category by id.
	Get(ctx context.Context, id kernel.UUID) (*category.Category, error)

	// Exists reports whether a category with the id is persisted.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
