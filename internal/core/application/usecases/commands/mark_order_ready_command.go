package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand represents an employee announcing an order is cooked
// and ready for pickup. Completing it assigns the handoff PIN and notifies
// the customer.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a command to mark an order ready.
func NewMarkOrderReadyCommand(requester actor.Actor, orderID kernel.UUID) (MarkOrderReadyCommand, error) {
	cmd := MarkOrderReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(requester),
		cmd.setOrderID(orderID),
	); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// Actor returns the announcing employee.
func (c MarkOrderReadyCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the order to mark ready.
func (c MarkOrderReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderReadyCommand) setActor(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.actor = requester
	return nil
}

func (c *MarkOrderReadyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = orderID
	return nil
}
