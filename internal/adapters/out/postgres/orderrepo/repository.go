package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Claims and status transitions are written conditionally: the WHERE clause
// re-checks the expected current state so a lost race surfaces as a conflict
// instead of a silent overwrite.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines in one write.
// The partial unique index on active customer orders turns a concurrent
// second order from the same customer into a conflict.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("customer already has an active order", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByStatusAndRestaurant retrieves one page of orders in the exact status at
// the restaurant, ordered by creation time with the ID as tie breaker.
func (r *GormOrderRepository) GetByStatusAndRestaurant(
	ctx context.Context,
	status order.Status,
	restaurantID kernel.UUID,
	page, pageSize int,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ? AND restaurant_id = ?", status.String(), restaurantID.Bytes()).
		Order("created_at, id").
		Limit(pageSize).
		Offset(page * pageSize).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// HasActiveOrder reports whether the customer has an order in PENDING,
// IN_PREPARATION, or READY status.
func (r *GormOrderRepository) HasActiveOrder(ctx context.Context, customerID kernel.UUID) (bool, error) {
	if err := customerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("customer_id = ? AND status IN ?", customerID.Bytes(), activeStatusStrings()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AssignChef claims the order for the chef. The write only succeeds when the
// order is still PENDING with no chef; zero affected rows is a lost race.
func (r *GormOrderRepository) AssignChef(ctx context.Context, orderID, chefID kernel.UUID) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND chef_id IS NULL", orderID.Bytes(), order.Pending.String()).
		Updates(map[string]any{
			"chef_id": chefID.Bytes(),
			"status":  order.InPreparation.String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order is no longer claimable")
	}

	return nil
}

// UpdateStatus transitions the order from one status to another, optionally
// writing the security PIN. Zero affected rows means the order left the
// expected status in the meantime.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	orderID kernel.UUID,
	from, to order.Status,
	pin *string,
) error {
	values := map[string]any{"status": to.String()}
	if pin != nil {
		values["pin"] = *pin
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", orderID.Bytes(), from.String()).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order is no longer in status " + from.String())
	}

	return nil
}

// GetPendingBefore retrieves PENDING orders created before the cutoff.
func (r *GormOrderRepository) GetPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ? AND created_at < ?", order.Pending.String(), cutoff).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

func activeStatusStrings() []string {
	return []string{order.Pending.String(), order.InPreparation.String(), order.Ready.String()}
}

// isUniqueViolation reports whether the error is a postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
