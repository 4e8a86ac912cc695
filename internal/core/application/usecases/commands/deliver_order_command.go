package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents the handoff of a READY order to the customer,
// authenticated by the security PIN assigned when the order became ready.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID
	pin     string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver an order.
func NewDeliverOrderCommand(requester actor.Actor, orderID kernel.UUID, pin string) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(requester),
		cmd.setOrderID(orderID),
		cmd.setPIN(pin),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// Actor returns the delivering employee.
func (c DeliverOrderCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the order being handed over.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PIN returns the code presented by the customer.
func (c DeliverOrderCommand) PIN() string {
	return c.pin
}

func (c *DeliverOrderCommand) setActor(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.actor = requester
	return nil
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setPIN(pin string) error {
	if pin == "" {
		return errs.NewValueIsRequiredError("pin")
	}
	c.pin = pin
	return nil
}
