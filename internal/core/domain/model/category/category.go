// Package category implements the category reference entity.
// Categories are read-only data from the core's perspective: dishes reference
// them and dish creation checks they exist, nothing more.
package category

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through the NewCategory factory method.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups dishes on the menu (starters, mains, desserts).
type Category struct {
	id          kernel.UUID
	name        string
	description string

	isConstructed bool
}

// NewCategory creates a category with a non-blank name.
func NewCategory(id kernel.UUID, name, description string) (*Category, error) {
	c := &Category{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.description = description
	return c, nil
}

// Validate ensures the Category was created through NewCategory.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the category description.
func (c *Category) Description() string {
	return c.description
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
