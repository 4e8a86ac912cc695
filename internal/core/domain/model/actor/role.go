package actor

import (
	"fmt"
	"strings"

	"foodcourt/internal/pkg/errs"
)

// Role identifies the authorization level of the acting user.
// Every use case names the single role it accepts; the role is resolved at the
// boundary and carried inside the Actor value, never read from global state.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Admin may onboard restaurants.
	Admin

	// Owner may manage the dish catalog of restaurants they own.
	Owner

	// Employee may list, claim, and progress orders of their restaurant.
	Employee

	// Customer may create and cancel their own orders.
	Customer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Admin:       "ADMIN",
		Owner:       "OWNER",
		Employee:    "EMPLOYEE",
		Customer:    "CUSTOMER",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:    "ADMIN",
		Owner:    "OWNER",
		Employee: "EMPLOYEE",
		Customer: "CUSTOMER",
	}
}

// RoleFromString parses a role name case-insensitively.
// An unrecognized value is a validation error naming the offending string.
func RoleFromString(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for role, name := range getValidRoleStrings() {
		if name == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a recognized role", s),
	)
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the upper-case role name, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
