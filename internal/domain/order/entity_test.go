//go:build unit

package order_test

import (
	"testing"

	"lesson-booking/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	lessonA := uuid.New()
	lessonB := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		cart := order.Cart{
			{LessonID: lessonA, Quantity: 2},
			{LessonID: lessonB, Quantity: 1},
		}

		actual, err := order.NewOrder("Jane Doe", "07700900000", cart)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Jane Doe", actual.Name())
		assert.Equal(t, "07700900000", actual.Phone())
		assert.Equal(t, int32(3), actual.Space())
		assert.True(t, actual.Date().IsZero(), "date is assigned by the store")

		// one id entry per reserved seat
		want := []uuid.UUID{lessonA, lessonA, lessonB}
		if diff := cmp.Diff(want, actual.LessonIDs()); diff != "" {
			t.Errorf("LessonIDs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("trims name and phone", func(t *testing.T) {
		cart := order.Cart{{LessonID: lessonA, Quantity: 1}}

		actual, err := order.NewOrder("  Jane Doe  ", "  07700900000  ", cart)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", actual.Name())
		assert.Equal(t, "07700900000", actual.Phone())
	})

	t.Run("validation", func(t *testing.T) {
		cart := order.Cart{{LessonID: lessonA, Quantity: 1}}

		cases := []struct {
			name  string
			exec  func() (*order.Order, error)
			errIs error
		}{
			{
				name:  "empty name",
				exec:  func() (*order.Order, error) { return order.NewOrder("", "07700900000", cart) },
				errIs: order.ErrEmptyName,
			},
			{
				name:  "whitespace only name",
				exec:  func() (*order.Order, error) { return order.NewOrder("   ", "07700900000", cart) },
				errIs: order.ErrEmptyName,
			},
			{
				name:  "empty phone",
				exec:  func() (*order.Order, error) { return order.NewOrder("Jane Doe", "", cart) },
				errIs: order.ErrEmptyPhone,
			},
			{
				name:  "empty cart",
				exec:  func() (*order.Order, error) { return order.NewOrder("Jane Doe", "07700900000", nil) },
				errIs: order.ErrEmptyCart,
			},
			{
				name: "zero quantity line",
				exec: func() (*order.Order, error) {
					bad := order.Cart{{LessonID: lessonA, Quantity: 0}}
					return order.NewOrder("Jane Doe", "07700900000", bad)
				},
				errIs: order.ErrInvalidQuantity,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := c.exec()
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		cart := order.Cart{{LessonID: lessonA, Quantity: 1}}

		o1, err1 := order.NewOrder("Jane Doe", "07700900000", cart)
		o2, err2 := order.NewOrder("Jane Doe", "07700900000", cart)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, o1.ID(), o2.ID())
	})
}

func TestCart(t *testing.T) {
	lessonA := uuid.New()
	lessonB := uuid.New()

	t.Run("total seats sums quantities", func(t *testing.T) {
		cart := order.Cart{
			{LessonID: lessonA, Quantity: 2},
			{LessonID: lessonB, Quantity: 3},
		}
		assert.Equal(t, int32(5), cart.TotalSeats())
	})

	t.Run("duplicate lesson lines are kept in order", func(t *testing.T) {
		cart := order.Cart{
			{LessonID: lessonA, Quantity: 1},
			{LessonID: lessonB, Quantity: 1},
			{LessonID: lessonA, Quantity: 1},
		}
		want := []uuid.UUID{lessonA, lessonB, lessonA}
		if diff := cmp.Diff(want, cart.LessonIDs()); diff != "" {
			t.Errorf("LessonIDs mismatch (-want +got):\n%s", diff)
		}
	})
}
