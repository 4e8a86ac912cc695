package commands

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand represents an owner's request to change a dish's price or
// description. Absent fields stay untouched; at least one must be supplied.
type UpdateDishCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Actor
	dishID      kernel.UUID
	price       *int64
	description *string

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand creates a command to modify a dish. Nil means the
// field is left as is.
func NewUpdateDishCommand(
	requester actor.Actor,
	dishID kernel.UUID,
	price *int64,
	description *string,
) (UpdateDishCommand, error) {
	cmd := UpdateDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if price == nil && description == nil {
		return UpdateDishCommand{}, errs.NewValueIsRequiredError("at least one of price or description")
	}

	if err := errors.Join(
		cmd.setActor(requester),
		cmd.setDishID(dishID),
		cmd.setPrice(price),
		cmd.setDescription(description),
	); err != nil {
		return UpdateDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

// Actor returns the requesting owner.
func (c UpdateDishCommand) Actor() actor.Actor {
	return c.actor
}

// DishID returns the dish to modify.
func (c UpdateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// Price returns the new price, or nil when the price is unchanged.
func (c UpdateDishCommand) Price() *int64 {
	return c.price
}

// Description returns the new description, or nil when unchanged.
func (c UpdateDishCommand) Description() *string {
	return c.description
}

func (c *UpdateDishCommand) setActor(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.actor = requester
	return nil
}

func (c *UpdateDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("dish id")
	}
	c.dishID = dishID
	return nil
}

func (c *UpdateDishCommand) setPrice(price *int64) error {
	if price == nil {
		return nil
	}
	if *price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", *price))
	}
	c.price = price
	return nil
}

func (c *UpdateDishCommand) setDescription(description *string) error {
	if description == nil {
		return nil
	}
	if *description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}
