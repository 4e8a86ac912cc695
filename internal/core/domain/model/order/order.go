package order

import (
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the order lifecycle. It owns its lines and
// enforces the invariants that hold regardless of persistence:
//   - at least one line
//   - no two lines reference the same dish
//   - status changes follow the transition table in Status
//   - a chef is only ever set by claiming a Pending, unassigned order
//
// Cross-entity invariants (dish existence, one active order per customer) are
// enforced by the use cases through their ports.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	chefID       *kernel.UUID
	createdAt    time.Time
	status       Status
	pin          *string
	lines        []Line

	isConstructed bool
}

// NewOrder creates a Pending order for a customer at a restaurant.
// The caller supplies the creation time so handlers control the clock.
// Rejects an empty line list and reports the first duplicated dish id.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	createdAt time.Time,
	lines []Line,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setCreatedAt(createdAt),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
// Used only by repository implementations.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	chefID *kernel.UUID,
	createdAt time.Time,
	status Status,
	pin *string,
	lines []Line,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, createdAt, lines)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if chefID != nil {
		if err = chefID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.chefID = chefID
	o.pin = pin
	return o, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant the order was placed at.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Chef returns the claiming employee's ID, or nil while unclaimed.
func (o *Order) Chef() *kernel.UUID {
	return o.chefID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PIN returns the security PIN assigned when the order turned Ready,
// or nil before that.
func (o *Order) PIN() *string {
	return o.pin
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// HasDish reports whether any line references the given dish.
func (o *Order) HasDish(dishID kernel.UUID) bool {
	for _, l := range o.lines {
		if l.DishID().IsEqual(dishID) {
			return true
		}
	}
	return false
}

// Claim assigns the order to an employee and moves it to InPreparation.
// The order must be Pending with no chef; violating either is a conflict,
// distinct from malformed input. Persistence must re-check the same condition
// in the write itself so two racing claims cannot both win.
func (o *Order) Claim(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}
	if o.chefID != nil {
		return errs.NewConflictError("order is already assigned to a chef")
	}

	newStatus, err := o.status.TransitionTo(InPreparation)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.chefID = &chefID
	return nil
}

// MarkReady moves an InPreparation order to Ready and records the handoff PIN.
func (o *Order) MarkReady(pin string) error {
	if pin == "" {
		return errs.NewValueIsRequiredError("pin")
	}

	newStatus, err := o.status.TransitionTo(Ready)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pin = &pin
	return nil
}

// Deliver completes the handoff of a Ready order.
// The supplied PIN must match the one assigned at MarkReady; a mismatch is an
// authorization failure, not a validation error.
func (o *Order) Deliver(pin string) error {
	newStatus, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	if o.pin == nil || *o.pin != pin {
		return errs.NewNotAuthorizedError("security pin does not match")
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws a Pending order. Any other status is a conflict.
func (o *Order) Cancel() error {
	if !o.status.CanTransitionTo(Cancelled) {
		return errs.NewConflictErrorWithCause(
			"order can no longer be cancelled",
			fmt.Errorf("order in status %s is already in the kitchen", o.status.String()),
		)
	}

	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order must contain at least one dish")
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		if _, dup := seen[l.DishID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"order lines",
				fmt.Errorf("dish %s is referenced more than once", l.DishID()),
			)
		}
		seen[l.DishID()] = struct{}{}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
