// Package dish implements the dish entity of the food-court catalog.
// A dish belongs to exactly one restaurant; its name is unique within that
// restaurant and only the restaurant's owner may create or modify it.
package dish

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through the NewDish or RestoreDish factory methods.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish is a catalog entry of one restaurant. Price is a positive integer in
// currency minor units. New dishes start active; inactive dishes cannot be
// ordered but remain in the catalog.
type Dish struct {
	id           kernel.UUID
	name         string
	price        int64
	description  string
	imageURL     string
	categoryID   kernel.UUID
	restaurantID kernel.UUID
	active       bool

	isConstructed bool
}

// NewDish creates an active dish, validating every field.
func NewDish(
	id kernel.UUID,
	name string,
	price int64,
	description string,
	imageURL string,
	categoryID kernel.UUID,
	restaurantID kernel.UUID,
) (*Dish, error) {
	d := &Dish{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPrice(price),
		d.setDescription(description),
		d.setImageURL(imageURL),
		d.setCategoryID(categoryID),
		d.setRestaurantID(restaurantID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDish reconstructs a dish from persistence including its active flag.
// Used only by repository implementations.
func RestoreDish(
	id kernel.UUID,
	name string,
	price int64,
	description string,
	imageURL string,
	categoryID kernel.UUID,
	restaurantID kernel.UUID,
	active bool,
) (*Dish, error) {
	d, err := NewDish(id, name, price, description, imageURL, categoryID, restaurantID)
	if err != nil {
		return nil, err
	}
	d.active = active
	return d, nil
}

// Validate ensures the Dish was created through a factory method.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// IsEqual compares two dishes by identity.
func (d *Dish) IsEqual(other *Dish) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Price returns the price in currency minor units.
func (d *Dish) Price() int64 {
	return d.price
}

// Description returns the menu description.
func (d *Dish) Description() string {
	return d.description
}

// ImageURL returns the dish image location.
func (d *Dish) ImageURL() string {
	return d.imageURL
}

// CategoryID returns the category reference.
func (d *Dish) CategoryID() kernel.UUID {
	return d.categoryID
}

// RestaurantID returns the owning restaurant.
func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// IsActive reports whether the dish can currently be ordered.
func (d *Dish) IsActive() bool {
	return d.active
}

// ChangePrice updates the price. The new price must be positive.
func (d *Dish) ChangePrice(price int64) error {
	return d.setPrice(price)
}

// ChangeDescription updates the menu description. Must be non-blank.
func (d *Dish) ChangeDescription(description string) error {
	return d.setDescription(description)
}

// SetActive toggles whether the dish can be ordered.
func (d *Dish) SetActive(active bool) {
	d.active = active
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	d.price = price
	return nil
}

func (d *Dish) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	d.description = description
	return nil
}

func (d *Dish) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("image url")
	}
	d.imageURL = imageURL
	return nil
}

func (d *Dish) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("category id")
	}
	d.categoryID = categoryID
	return nil
}

func (d *Dish) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	d.restaurantID = restaurantID
	return nil
}
