package postgres

import (
	"foodcourt/internal/adapters/out/postgres/categoryrepo"
	"foodcourt/internal/adapters/out/postgres/dishrepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all repositories.
// Besides the GORM-managed tables it installs the partial unique index that
// enforces at most one active order per customer: the index only covers rows
// in an active status, so history does not block new orders.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&categoryrepo.CategoryDTO{},
		&dishrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
	if err != nil {
		return err
	}

	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_order_per_customer
		ON orders (customer_id)
		WHERE status IN ('PENDING', 'IN_PREPARATION', 'READY')
	`).Error
}
