package dish_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/dish"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDish(t *testing.T) *dish.Dish {
	t.Helper()
	d, err := dish.NewDish(
		kernel.NewUUID(), "Pasta", 25000, "Fresh pasta with tomato sauce",
		"https://cdn.example.com/pasta.png", kernel.NewUUID(), kernel.NewUUID(),
	)
	require.NoError(t, err)
	return d
}

func TestNewDish(t *testing.T) {
	t.Run("should create active dish with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		categoryID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		d, err := dish.NewDish(id, "Pasta", 25000, "Fresh pasta", "https://cdn.example.com/p.png", categoryID, restaurantID)

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Pasta", d.Name())
		assert.Equal(t, int64(25000), d.Price())
		assert.Equal(t, "Fresh pasta", d.Description())
		assert.True(t, d.CategoryID().IsEqual(categoryID))
		assert.True(t, d.RestaurantID().IsEqual(restaurantID))
		assert.True(t, d.IsActive(), "new dishes default to active")
		require.NoError(t, d.Validate())
	})

	t.Run("should reject blank required fields", func(t *testing.T) {
		id, categoryID, restaurantID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		testCases := []struct {
			field string
			build func() error
		}{
			{"name", func() error {
				_, err := dish.NewDish(id, "", 25000, "desc", "img", categoryID, restaurantID)
				return err
			}},
			{"description", func() error {
				_, err := dish.NewDish(id, "Pasta", 25000, "", "img", categoryID, restaurantID)
				return err
			}},
			{"image url", func() error {
				_, err := dish.NewDish(id, "Pasta", 25000, "desc", "", categoryID, restaurantID)
				return err
			}},
			{"restaurant id", func() error {
				_, err := dish.NewDish(id, "Pasta", 25000, "desc", "img", categoryID, kernel.UUID{})
				return err
			}},
			{"category id", func() error {
				_, err := dish.NewDish(id, "Pasta", 25000, "desc", "img", kernel.UUID{}, restaurantID)
				return err
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.field, func(t *testing.T) {
				err := tc.build()
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
				assert.Contains(t, err.Error(), tc.field)
			})
		}
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		for _, price := range []int64{0, -100} {
			_, err := dish.NewDish(
				kernel.NewUUID(), "Pasta", price, "desc", "img", kernel.NewUUID(), kernel.NewUUID(),
			)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "price")
		}
	})

	t.Run("zero value dish fails validation", func(t *testing.T) {
		var d dish.Dish
		require.ErrorIs(t, d.Validate(), dish.ErrDishIsNotConstructed)
	})
}

func TestDish_ChangePrice(t *testing.T) {
	t.Run("updates to a positive price", func(t *testing.T) {
		d := newTestDish(t)

		require.NoError(t, d.ChangePrice(30000))
		assert.Equal(t, int64(30000), d.Price())
	})

	t.Run("rejects zero price", func(t *testing.T) {
		d := newTestDish(t)

		err := d.ChangePrice(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, int64(25000), d.Price(), "price must be untouched on failure")
	})
}

func TestDish_ChangeDescription(t *testing.T) {
	t.Run("updates to a non-blank description", func(t *testing.T) {
		d := newTestDish(t)

		require.NoError(t, d.ChangeDescription("Now with basil"))
		assert.Equal(t, "Now with basil", d.Description())
	})

	t.Run("rejects blank description", func(t *testing.T) {
		d := newTestDish(t)

		require.ErrorIs(t, d.ChangeDescription(""), errs.ErrValueIsRequired)
	})
}

func TestDish_SetActive(t *testing.T) {
	d := newTestDish(t)

	d.SetActive(false)
	assert.False(t, d.IsActive())

	d.SetActive(true)
	assert.True(t, d.IsActive())
}

func TestRestoreDish(t *testing.T) {
	d, err := dish.RestoreDish(
		kernel.NewUUID(), "Pasta", 25000, "desc", "img", kernel.NewUUID(), kernel.NewUUID(), false,
	)

	require.NoError(t, err)
	assert.False(t, d.IsActive(), "restore must preserve the inactive flag")
}
