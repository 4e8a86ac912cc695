package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents an administrator's request to onboard a
// new restaurant with its designated owner.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	name    string
	nit     int64
	address string
	phone   string
	logoURL string
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to onboard a restaurant.
// Field rules match the restaurant entity; the constructor proves them early
// by building a throwaway entity so a malformed request never reaches the
// database.
func NewCreateRestaurantCommand(
	requester actor.Actor,
	name string,
	nit int64,
	address string,
	phone string,
	logoURL string,
	ownerID kernel.UUID,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(requester); err != nil {
		return CreateRestaurantCommand{}, err
	}

	if _, err := restaurant.NewRestaurant(
		kernel.NewUUID(), name, nit, address, phone, logoURL, ownerID,
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	cmd.name = name
	cmd.nit = nit
	cmd.address = address
	cmd.phone = phone
	cmd.logoURL = logoURL
	cmd.ownerID = ownerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// Actor returns the requesting administrator.
func (c CreateRestaurantCommand) Actor() actor.Actor {
	return c.actor
}

// Name returns the restaurant name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// NIT returns the restaurant's tax identifier.
func (c CreateRestaurantCommand) NIT() int64 {
	return c.nit
}

// Address returns the venue address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// Phone returns the contact phone.
func (c CreateRestaurantCommand) Phone() string {
	return c.phone
}

// LogoURL returns the restaurant logo location.
func (c CreateRestaurantCommand) LogoURL() string {
	return c.logoURL
}

// OwnerID returns the designated owner's user id.
func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *CreateRestaurantCommand) setActor(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.actor = requester
	return nil
}
