package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer withdrawing their own order.
// Only PENDING orders can be withdrawn; once a chef claims the order it is
// already being cooked.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(requester actor.Actor, orderID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(requester),
		cmd.setOrderID(orderID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Actor returns the cancelling customer.
func (c CancelOrderCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelOrderCommand) setActor(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.actor = requester
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = orderID
	return nil
}
