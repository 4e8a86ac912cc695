package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// maxPageSize bounds a single page so the kitchen board cannot request the
// whole order history in one call.
const maxPageSize = 100

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves one page of a restaurant's orders in the
// exact status. Used by kitchen staff to work the queue of pending and
// in-preparation orders.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	actor        actor.Actor
	status       order.Status
	restaurantID kernel.UUID
	page         int
	pageSize     int

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for a restaurant's order page.
// Page numbers start at 0.
func NewGetOrdersByStatusQuery(
	requester actor.Actor,
	status order.Status,
	restaurantID kernel.UUID,
	page, pageSize int,
) (GetOrdersByStatusQuery, error) {
	q := GetOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActor(requester),
		q.setStatus(status),
		q.setRestaurantID(restaurantID),
		q.setPage(page),
		q.setPageSize(pageSize),
	); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Actor returns the requesting employee.
func (q GetOrdersByStatusQuery) Actor() actor.Actor {
	return q.actor
}

// Status returns the status filter.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// RestaurantID returns the restaurant whose orders are listed.
func (q GetOrdersByStatusQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Page returns the zero-based page number.
func (q GetOrdersByStatusQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q GetOrdersByStatusQuery) PageSize() int {
	return q.pageSize
}

func (q *GetOrdersByStatusQuery) setActor(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	q.actor = requester
	return nil
}

func (q *GetOrdersByStatusQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}

func (q *GetOrdersByStatusQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	q.restaurantID = restaurantID
	return nil
}

func (q *GetOrdersByStatusQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsOutOfRangeError("page", page, 0, "any non-negative number")
	}
	q.page = page
	return nil
}

func (q *GetOrdersByStatusQuery) setPageSize(pageSize int) error {
	if pageSize < 1 || pageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("page size", pageSize, 1, maxPageSize)
	}
	q.pageSize = pageSize
	return nil
}

// GetOrdersByStatusQueryResponse represents one order on the page.
type GetOrdersByStatusQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	ChefID       *kernel.UUID
	Status       string
	CreatedAt    time.Time
	Lines        []OrderLineResponse
}

// OrderLineResponse represents one dish position of an order.
type OrderLineResponse struct {
	DishID   kernel.UUID
	Quantity int
}
