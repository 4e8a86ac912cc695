package order

import (
	"fmt"
	"strings"

	"foodcourt/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a static transition table so every place
// that requests a transition enforces the same rules.
//
// State transitions:
//
//	Pending ──> InPreparation ──> Ready ──> Delivered
//	   │
//	   └──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	// Pending orders are waiting to be claimed by an employee.
	Pending

	// InPreparation indicates an employee has claimed the order and is cooking.
	InPreparation

	// Ready indicates the order is cooked and awaiting customer pickup.
	// Entering Ready assigns the security PIN used at handoff.
	Ready

	// Delivered indicates the order was handed to the customer. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn before preparation. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

// allowedTransitions is the single source of truth for the order state machine.
// A status absent from the map (Delivered, Cancelled) permits no transition.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:       {InPreparation, Cancelled},
		InPreparation: {Ready},
		Ready:         {Delivered},
	}
}

// StatusFromString parses a status name case-insensitively.
// An unrecognized value is a validation error naming the offending string.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized order status", s),
	)
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case status name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the status counts toward the one-active-order-per-
// customer invariant: Pending, InPreparation, or Ready.
func (s Status) IsActive() bool {
	return s == Pending || s == InPreparation || s == Ready
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns the next status if the transition is legal.
// An illegal pair, including self-transitions and anything out of a terminal
// status, is a conflict naming both states.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewConflictErrorWithCause(
			"illegal status transition",
			fmt.Errorf("order cannot move from %s to %s", s.String(), next.String()),
		)
	}
	return next, nil
}
