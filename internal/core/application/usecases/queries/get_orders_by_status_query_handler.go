package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// GetOrdersByStatusQueryHandler reads a restaurant's order page straight from
// the database, bypassing the aggregate repositories.
type GetOrdersByStatusQueryHandler struct {
	db        *gorm.DB
	directory ports.RoleDirectory
}

// NewGetOrdersByStatusQueryHandler creates a handler for order listings.
func NewGetOrdersByStatusQueryHandler(
	db *gorm.DB,
	directory ports.RoleDirectory,
) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db, directory: directory}
}

// Handle executes the listing. The requester must be an employee affiliated,
// per the role directory, with the requested restaurant. Results are ordered
// by creation time with the id as tie breaker so pages stay stable for a
// fixed snapshot.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.requireAffiliation(ctx, query); err != nil {
		return nil, err
	}

	orders, err := h.fetchOrders(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.fetchLines(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersByStatusQueryHandler) requireAffiliation(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) error {
	requester := query.Actor()
	if err := requester.RequireRole(actor.Employee); err != nil {
		return err
	}

	affiliation, err := h.directory.RestaurantByEmployee(ctx, requester.UserID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errs.NewNotAuthorizedError("employee is not affiliated with any restaurant")
	case errors.Is(err, errs.ErrDependencyFailure):
		return err
	case err != nil:
		return errs.NewDependencyFailureErrorWithCause("role directory", err)
	}

	if !affiliation.IsEqual(query.RestaurantID()) {
		return errs.NewNotAuthorizedError("employee is not affiliated with this restaurant")
	}

	return nil
}

func (h GetOrdersByStatusQueryHandler) fetchOrders(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	orders := make([]GetOrdersByStatusQueryResponse, 0, query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			chef_id,
			status,
			created_at
		FROM orders
		WHERE status = ? AND restaurant_id = ?
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, query.Status().String(), query.RestaurantID().String(),
		query.PageSize(), query.Page()*query.PageSize()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			customerID   uuid.UUID
			restaurantID uuid.UUID
			chefID       *uuid.UUID
			status       string
			createdAt    time.Time
		)

		err = rows.Scan(&id, &customerID, &restaurantID, &chefID, &status, &createdAt)
		if err != nil {
			return nil, err
		}

		resp := GetOrdersByStatusQueryResponse{
			Status:    status,
			CreatedAt: createdAt,
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if chefID != nil {
			chef, chefErr := kernel.UUIDFromBytes(chefID[:])
			if chefErr != nil {
				return nil, chefErr
			}
			resp.ChefID = &chef
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersByStatusQueryHandler) fetchLines(
	ctx context.Context,
	orders []GetOrdersByStatusQueryResponse,
) error {
	ids := make([]string, 0, len(orders))
	index := make(map[kernel.UUID]int, len(orders))
	for i, resp := range orders {
		ids = append(ids, resp.ID.String())
		index[resp.ID] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			dish_id,
			quantity
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, dish_id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID  uuid.UUID
			dishID   uuid.UUID
			quantity int
		)

		if err = rows.Scan(&orderID, &dishID, &quantity); err != nil {
			return err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		did, idErr := kernel.UUIDFromBytes(dishID[:])
		if idErr != nil {
			return idErr
		}

		i, ok := index[oid]
		if !ok {
			continue
		}
		orders[i].Lines = append(orders[i].Lines, OrderLineResponse{
			DishID:   did,
			Quantity: quantity,
		})
	}

	return rows.Err()
}
