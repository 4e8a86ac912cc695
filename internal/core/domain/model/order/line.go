package order

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one dish position within an order. A Line is a value object owned by
// its Order; dish references are unique within one order.
type Line struct {
	dishID   kernel.UUID
	quantity int

	isConstructed bool
}

// NewLine creates a line for the given dish and quantity.
// Validation failures name the dish id so a multi-line order reports exactly
// which position was wrong.
func NewLine(dishID kernel.UUID, quantity int) (Line, error) {
	if err := dishID.Validate(); err != nil {
		return Line{}, errs.NewValueIsRequiredError("dish id")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("quantity for dish %s", dishID),
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Line{
		dishID:        dishID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was properly constructed through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// DishID returns the referenced dish identifier.
func (l Line) DishID() kernel.UUID {
	return l.dishID
}

// Quantity returns how many units of the dish were ordered.
func (l Line) Quantity() int {
	return l.quantity
}
