// Package actor models the authenticated caller of a use case.
// An Actor is an explicit value passed into every command and query constructor;
// the core never reads caller identity from ambient or thread-local state.
package actor

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor carries the identity and role of the user on whose behalf an operation
// runs. It is an immutable value object; authorization decisions compare its
// role and user ID against the entities the operation touches.
type Actor struct {
	userID kernel.UUID
	role   Role

	isConstructed bool
}

// NewActor creates an Actor from a validated user ID and role.
func NewActor(userID kernel.UUID, role Role) (Actor, error) {
	a := Actor{isConstructed: true}

	if err := errors.Join(
		a.setUserID(userID),
		a.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return a, nil
}

// Validate ensures the Actor was properly constructed through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// UserID returns the acting user's identifier.
func (a Actor) UserID() kernel.UUID {
	return a.userID
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// HasRole reports whether the actor holds the given role.
func (a Actor) HasRole(role Role) bool {
	return a.role == role
}

// RequireRole returns an authorization error unless the actor holds the given
// role. The error names the required role.
func (a Actor) RequireRole(role Role) error {
	if a.role != role {
		return errs.NewNotAuthorizedError("role " + role.String() + " is required")
	}
	return nil
}

func (a *Actor) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	a.userID = userID
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
