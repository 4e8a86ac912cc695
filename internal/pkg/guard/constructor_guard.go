// Package guard implements the constructor-guard pattern: a small embedded flag
// that distinguishes objects built through their designated constructor from
// zero values, so validation can reject structs that bypassed construction.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value object or command as properly constructed.
// Embed it in a struct and set it via NewConstructorGuard inside the constructor;
// a zero-value struct then fails Validate.
//
// Example:
//
//	type CreateDishCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateDishCommand(name string) (CreateDishCommand, error) {
//	    if name == "" {
//	        return CreateDishCommand{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return CreateDishCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateDishCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
