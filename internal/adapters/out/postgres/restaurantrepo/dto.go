// Package restaurantrepo persists restaurant entities with GORM.
package restaurantrepo

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurants.
// Name and NIT each carry their own unique index so a collision is reported
// under the right field.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	NIT     int64     `gorm:"type:bigint;not null;uniqueIndex"`
	Address string    `gorm:"type:text;not null"`
	Phone   string    `gorm:"type:varchar(16);not null"`
	LogoURL string    `gorm:"type:text;not null"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// fromDomain converts a restaurant entity to its database representation.
func fromDomain(entity *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      entity.ID().Bytes(),
		Name:    entity.Name(),
		NIT:     entity.NIT(),
		Address: entity.Address(),
		Phone:   entity.Phone(),
		LogoURL: entity.LogoURL(),
		OwnerID: entity.OwnerID().Bytes(),
	}
}

// toDomain converts a database DTO to a restaurant entity.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(
		id, dto.Name, dto.NIT, dto.Address, dto.Phone, dto.LogoURL, ownerID,
	)
}
