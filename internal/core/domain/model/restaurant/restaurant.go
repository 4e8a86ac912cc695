// Package restaurant implements the restaurant entity of the food-court core.
// Restaurants are onboarded once by an administrator and never mutated by the
// core afterwards; their name and tax id are globally unique.
package restaurant

import (
	"errors"
	"fmt"
	"regexp"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through the NewRestaurant factory method.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// maxPhoneLength bounds the full phone string, sign included.
const maxPhoneLength = 13

var (
	nameLetterPattern = regexp.MustCompile(`\p{L}`)
	phonePattern      = regexp.MustCompile(`^\+?\d{1,13}$`)
)

// Restaurant is an immutable entity describing one venue of the food court.
// NIT is the venue's tax identifier, a positive integer unique across all
// restaurants; the name is unique as well.
type Restaurant struct {
	id      kernel.UUID
	name    string
	nit     int64
	address string
	phone   string
	logoURL string
	ownerID kernel.UUID

	isConstructed bool
}

// NewRestaurant creates a restaurant, validating every field.
// The name must contain at least one letter so purely numeric names are
// rejected. The phone length check is reported separately from the pattern
// check for clearer diagnostics.
func NewRestaurant(
	id kernel.UUID,
	name string,
	nit int64,
	address string,
	phone string,
	logoURL string,
	ownerID kernel.UUID,
) (*Restaurant, error) {
	r := &Restaurant{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setNIT(nit),
		r.setAddress(address),
		r.setPhone(phone),
		r.setLogoURL(logoURL),
		r.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// IsEqual compares two restaurants by identity.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// NIT returns the restaurant's tax identifier.
func (r *Restaurant) NIT() int64 {
	return r.nit
}

// Address returns the restaurant's street address.
func (r *Restaurant) Address() string {
	return r.address
}

// Phone returns the restaurant's contact phone.
func (r *Restaurant) Phone() string {
	return r.phone
}

// LogoURL returns the restaurant's logo location.
func (r *Restaurant) LogoURL() string {
	return r.logoURL
}

// OwnerID returns the identifier of the owner user.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// IsOwnedBy reports whether the given user is the recorded owner.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !nameLetterPattern.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause(
			"name",
			fmt.Errorf("%q must contain at least one letter", name),
		)
	}
	r.name = name
	return nil
}

func (r *Restaurant) setNIT(nit int64) error {
	if nit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("nit", fmt.Errorf("%d is not greater than 0", nit))
	}
	r.nit = nit
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

func (r *Restaurant) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if len(phone) > maxPhoneLength {
		return errs.NewValueIsOutOfRangeError("phone length", len(phone), 1, maxPhoneLength)
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("%q must be digits with an optional leading +", phone),
		)
	}
	r.phone = phone
	return nil
}

func (r *Restaurant) setLogoURL(logoURL string) error {
	if logoURL == "" {
		return errs.NewValueIsRequiredError("logo url")
	}
	r.logoURL = logoURL
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("owner id")
	}
	r.ownerID = ownerID
	return nil
}
