package dishrepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDishRepository creates a new GORM dish repository.
func NewGormDishRepository(db *gorm.DB, tracker aggregateTracker) *GormDishRepository {
	return &GormDishRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dish. A duplicate (name, restaurant) pair hitting the
// unique index is reported as a conflict.
func (r *GormDishRepository) Add(ctx context.Context, entity *dish.Dish) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("restaurant already has a dish with this name", err)
		}
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Update saves an existing dish.
func (r *GormDishRepository) Update(ctx context.Context, entity *dish.Dish) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).Model(&DishDTO{}).
		Where("id = ?", dto.ID).
		Select("Price", "Description", "Active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", entity.ID().String())
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves a dish by ID.
func (r *GormDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a dish with the ID is persisted.
func (r *GormDishRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DishDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ExistsByNameAndRestaurant reports whether the restaurant already has a dish
// with the name.
func (r *GormDishRepository) ExistsByNameAndRestaurant(
	ctx context.Context,
	name string,
	restaurantID kernel.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DishDTO{}).
		Where("name = ? AND restaurant_id = ?", name, restaurantID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// isUniqueViolation reports whether the error is a postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
