package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrSetDishActiveCommandIsNotConstructed = errors.New(
	"SetDishActiveCommand must be created via NewSetDishActiveCommand constructor",
)

// SetDishActiveCommand represents an owner's request to enable or disable a
// dish. Disabled dishes stay in the catalog but cannot be ordered.
type SetDishActiveCommand struct { //nolint:recvcheck //using for validation
	actor  actor.Actor
	dishID kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

// NewSetDishActiveCommand creates a command to toggle dish availability.
// The active flag is mandatory; a nil flag means the caller omitted it.
func NewSetDishActiveCommand(
	requester actor.Actor,
	dishID kernel.UUID,
	active *bool,
) (SetDishActiveCommand, error) {
	cmd := SetDishActiveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if active == nil {
		return SetDishActiveCommand{}, errs.NewValueIsRequiredError("active")
	}
	cmd.active = *active

	if err := errors.Join(
		cmd.setActor(requester),
		cmd.setDishID(dishID),
	); err != nil {
		return SetDishActiveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDishActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetDishActiveCommandIsNotConstructed)
}

// Actor returns the requesting owner.
func (c SetDishActiveCommand) Actor() actor.Actor {
	return c.actor
}

// DishID returns the dish to toggle.
func (c SetDishActiveCommand) DishID() kernel.UUID {
	return c.dishID
}

// Active returns the desired availability.
func (c SetDishActiveCommand) Active() bool {
	return c.active
}

func (c *SetDishActiveCommand) setActor(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.actor = requester
	return nil
}

func (c *SetDishActiveCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("dish id")
	}
	c.dishID = dishID
	return nil
}
