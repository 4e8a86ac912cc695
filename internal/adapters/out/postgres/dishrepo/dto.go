// Package dishrepo persists dish entities with GORM.
package dishrepo

import (
	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DishDTO represents the database structure for persisting dishes.
// The (name, restaurant) pair carries a unique index backing the per-restaurant
// name uniqueness rule under concurrent creates.
type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_dish_name_per_restaurant"`
	Price        int64     `gorm:"type:bigint;not null"`
	Description  string    `gorm:"type:text;not null"`
	ImageURL     string    `gorm:"type:text;not null"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_dish_name_per_restaurant;index"`
	Active       bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "dishes".
func (DishDTO) TableName() string {
	return "dishes"
}

// fromDomain converts a dish entity to its database representation.
func fromDomain(entity *dish.Dish) DishDTO {
	return DishDTO{
		ID:           entity.ID().Bytes(),
		Name:         entity.Name(),
		Price:        entity.Price(),
		Description:  entity.Description(),
		ImageURL:     entity.ImageURL(),
		CategoryID:   entity.CategoryID().Bytes(),
		RestaurantID: entity.RestaurantID().Bytes(),
		Active:       entity.IsActive(),
	}
}

// toDomain converts a database DTO to a dish entity using RestoreDish.
func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return dish.RestoreDish(
		id, dto.Name, dto.Price, dto.Description, dto.ImageURL,
		categoryID, restaurantID, dto.Active,
	)
}
