package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents an employee's request to take a pending order
// into preparation, assigning themselves as chef.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command to claim an order.
func NewClaimOrderCommand(requester actor.Actor, orderID kernel.UUID) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(requester),
		cmd.setOrderID(orderID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// Actor returns the claiming employee.
func (c ClaimOrderCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ClaimOrderCommand) setActor(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.actor = requester
	return nil
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = orderID
	return nil
}
