package commands

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineDraft is one requested dish position as received from the caller,
// before any existence or activity checks. A zero DishID models an absent
// dish reference; it is rejected during per-line validation, not here, so the
// failure ordering of order creation stays observable.
type OrderLineDraft struct {
	DishID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a customer's request to place an order.
// The customer identity always comes from the actor; a client id supplied in
// the payload is ignored so callers cannot order on someone else's behalf.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor        actor.Actor
	restaurantID kernel.UUID
	lines        []OrderLineDraft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Rejects an empty line list and reports the first duplicated dish id; every
// other rule is checked by the handler in its documented order.
func NewCreateOrderCommand(
	requester actor.Actor,
	restaurantID kernel.UUID,
	lines []OrderLineDraft,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(requester),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the requesting customer.
func (c CreateOrderCommand) Actor() actor.Actor {
	return c.actor
}

// RestaurantID returns the restaurant the order targets.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLineDraft {
	lines := make([]OrderLineDraft, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setActor(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.actor = requester
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineDraft) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order must contain at least one dish")
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, l := range lines {
		if l.DishID.Validate() != nil {
			continue // absent dish ids are reported per line by the handler
		}
		if _, dup := seen[l.DishID]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"order lines",
				fmt.Errorf("dish %s is referenced more than once", l.DishID),
			)
		}
		seen[l.DishID] = struct{}{}
	}

	c.lines = make([]OrderLineDraft, len(lines))
	copy(c.lines, lines)
	return nil
}
