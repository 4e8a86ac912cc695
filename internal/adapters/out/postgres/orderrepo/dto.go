// Package orderrepo persists order aggregates with GORM. The order header and
// its lines map to two tables written together; the repository converts
// between the domain aggregate and the relational shape.
package orderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string form so the partial unique index guarding the
// one-active-order invariant stays readable in the schema.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;not null;index"`
	ChefID       *uuid.UUID     `gorm:"type:uuid;index"`
	Status       string         `gorm:"type:varchar(32);not null;index"`
	PIN          *string        `gorm:"type:varchar(8)"`
	CreatedAt    time.Time      `gorm:"not null"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one dish position of an order.
// The (order, dish) pair is the primary key; the domain rejects duplicate
// dishes within an order before the row is ever written.
type OrderLineDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	DishID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var chefID *uuid.UUID
	if id := aggregate.Chef(); id != nil {
		raw := id.Bytes()
		chefID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, l := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:  orderID,
			DishID:   l.DishID().Bytes(),
			Quantity: l.Quantity(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		ChefID:       chefID,
		Status:       aggregate.Status().String(),
		PIN:          aggregate.PIN(),
		CreatedAt:    aggregate.CreatedAt(),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var chefID *kernel.UUID
	if dto.ChefID != nil {
		cID, chefErr := kernel.UUIDFromBytes((*dto.ChefID)[:])
		if chefErr != nil {
			return nil, chefErr
		}
		chefID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		dishID, dishErr := kernel.UUIDFromBytes(lineDTO.DishID[:])
		if dishErr != nil {
			return nil, dishErr
		}

		line, lineErr := order.NewLine(dishID, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, customerID, restaurantID, chefID, dto.CreatedAt, status, dto.PIN, lines)
}
