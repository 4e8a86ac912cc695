package commands

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand represents an owner's request to add a dish to their
// restaurant's catalog. New dishes start active.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	actor        actor.Actor
	name         string
	price        int64
	description  string
	imageURL     string
	categoryID   kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish, validating every field.
func NewCreateDishCommand(
	requester actor.Actor,
	name string,
	price int64,
	description string,
	imageURL string,
	categoryID kernel.UUID,
	restaurantID kernel.UUID,
) (CreateDishCommand, error) {
	cmd := CreateDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(requester),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setDescription(description),
		cmd.setImageURL(imageURL),
		cmd.setCategoryID(categoryID),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return CreateDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Actor returns the requesting owner.
func (c CreateDishCommand) Actor() actor.Actor {
	return c.actor
}

// Name returns the dish name.
func (c CreateDishCommand) Name() string {
	return c.name
}

// Price returns the dish price in currency minor units.
func (c CreateDishCommand) Price() int64 {
	return c.price
}

// Description returns the menu description.
func (c CreateDishCommand) Description() string {
	return c.description
}

// ImageURL returns the dish image location.
func (c CreateDishCommand) ImageURL() string {
	return c.imageURL
}

// CategoryID returns the category the dish belongs to.
func (c CreateDishCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// RestaurantID returns the restaurant receiving the dish.
func (c CreateDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *CreateDishCommand) setActor(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.actor = requester
	return nil
}

func (c *CreateDishCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDishCommand) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", price))
	}
	c.price = price
	return nil
}

func (c *CreateDishCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *CreateDishCommand) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("image url")
	}
	c.imageURL = imageURL
	return nil
}

func (c *CreateDishCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("category id")
	}
	c.categoryID = categoryID
	return nil
}

func (c *CreateDishCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	c.restaurantID = restaurantID
	return nil
}
