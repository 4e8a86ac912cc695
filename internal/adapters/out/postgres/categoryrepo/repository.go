// Package categoryrepo reads the category reference data with GORM.
// Categories are seeded outside the core; the repository is read-only.
package categoryrepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/category"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryDTO represents the database structure for categories.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Get retrieves a category by ID.
func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a category with the ID is persisted.
func (r *GormCategoryRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&CategoryDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// toDomain converts a database DTO to a category entity.
func toDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return category.NewCategory(id, dto.Name, dto.Description)
}
