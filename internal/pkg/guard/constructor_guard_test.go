package guard_test

import (
	"errors"
	"testing"

	"foodcourt/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage on a command-like value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type claimOrder struct {
		orderID string
		guard   guard.ConstructorGuard
	}

	var errClaimOrderNotConstructed = errors.New("claimOrder must be created via its constructor")

	newClaimOrder := func(orderID string) (claimOrder, error) {
		if orderID == "" {
			return claimOrder{}, errors.New("order ID is required")
		}
		return claimOrder{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		cmd, err := newClaimOrder("9b2e...")
		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errClaimOrderNotConstructed))
		assert.Equal(t, "9b2e...", cmd.orderID)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd claimOrder
		err := cmd.guard.Validate(errClaimOrderNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errClaimOrderNotConstructed, err)
	})
}
