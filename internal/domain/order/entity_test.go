//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"almaaz-api/internal/domain/booking"
	"almaaz-api/internal/domain/order"
	"almaaz-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, order.TypePreOrder, actual.Type())
		assert.Equal(t, order.StatusPending, actual.Status())
		assert.Equal(t, int64(2*1850+2*350), actual.TotalCents())
		assert.Equal(t, b.TableNumber, actual.TableNumber())
		assert.True(t, actual.IsLive())
		assert.Equal(t, booking.TableKey(b.DiningDate, b.DiningTime, b.TableNumber), actual.Key())
	})

	t.Run("table key validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.OrderBuilder)
			errIs  error
		}{
			{
				name:   "invalid table",
				mutate: func(b *builder.OrderBuilder) { b.TableNumber = 13 },
				errIs:  booking.ErrInvalidTable,
			},
			{
				name:   "past date",
				mutate: func(b *builder.OrderBuilder) { b.DiningDate = "2026-03-01" },
				errIs:  booking.ErrDateInPast,
			},
			{
				name:   "off-grid time",
				mutate: func(b *builder.OrderBuilder) { b.DiningTime = "16:15" },
				errIs:  booking.ErrInvalidSlot,
			},
			{
				name:   "morning dining slot is accepted",
				mutate: func(b *builder.OrderBuilder) { b.DiningTime = "11:30" },
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewOrderBuilder().With(tc.mutate)
				actual, err := b.BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("empty order is rejected", func(t *testing.T) {
		b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.Items = nil })
		_, err := b.BuildDomain()
		require.ErrorIs(t, err, order.ErrNoItems)
	})
}

func TestNewDineIn(t *testing.T) {
	b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.OrderType = order.TypeDineIn
		b.PaymentMethod = order.PaymentMethodCash
	})
	actual, err := b.BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, order.TypeDineIn, actual.Type())
	assert.Empty(t, actual.DiningDate())
	assert.Zero(t, actual.TableNumber())
	assert.False(t, actual.IsLive(), "dine-in orders never hold a table claim")
}

func TestPaymentSimulation(t *testing.T) {
	t.Run("card settles immediately", func(t *testing.T) {
		b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.PaymentMethod = order.PaymentMethodCard
		})
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, order.PaymentPaid, actual.PaymentStatus())
		require.True(t, strings.HasPrefix(actual.PaymentID(), "PAY_"))
		assert.Len(t, actual.PaymentID(), len("PAY_")+32)
	})

	t.Run("cash stays unpaid", func(t *testing.T) {
		b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.PaymentMethod = order.PaymentMethodCash
		})
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, order.PaymentUnpaid, actual.PaymentStatus())
		assert.Empty(t, actual.PaymentID())
	})

	t.Run("empty method defaults to none", func(t *testing.T) {
		b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.PaymentMethod = ""
		})
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, order.PaymentMethodNone, actual.PaymentMethod())
		assert.Equal(t, order.PaymentUnpaid, actual.PaymentStatus())
	})

	t.Run("payment ids do not repeat", func(t *testing.T) {
		assert.NotEqual(t, order.NewPaymentID(), order.NewPaymentID())
	})
}

func TestAdvanceTo(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	build := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		return o
	}

	t.Run("walks the full pipeline", func(t *testing.T) {
		o := build(t)
		for _, next := range []order.Status{order.StatusPreparing, order.StatusReady, order.StatusDelivered} {
			require.NoError(t, o.AdvanceTo(next, now))
			assert.Equal(t, next, o.Status())
		}
		assert.False(t, o.IsLive(), "delivery releases the table claim")
	})

	t.Run("forward jump is allowed", func(t *testing.T) {
		o := build(t)
		require.NoError(t, o.AdvanceTo(order.StatusDelivered, now))
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		o := build(t)
		created := o.UpdatedAt()
		require.NoError(t, o.AdvanceTo(order.StatusPending, now.Add(time.Hour)))
		assert.Equal(t, created, o.UpdatedAt())
	})

	t.Run("backward move is rejected", func(t *testing.T) {
		o := build(t)
		require.NoError(t, o.AdvanceTo(order.StatusReady, now))
		err := o.AdvanceTo(order.StatusPreparing, now)
		require.ErrorIs(t, err, order.ErrBackwardTransition)
		assert.Equal(t, order.StatusReady, o.Status())
	})

	t.Run("delivered is immutable", func(t *testing.T) {
		o := build(t)
		require.NoError(t, o.AdvanceTo(order.StatusDelivered, now))
		require.ErrorIs(t, o.AdvanceTo(order.StatusReady, now), order.ErrImmutable)
	})

	t.Run("unknown status", func(t *testing.T) {
		o := build(t)
		require.ErrorIs(t, o.AdvanceTo("Shipped", now), order.ErrUnknownStatus)
	})
}

func TestLines(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			itemName string
			quantity int
			price    int64
			errIs    error
		}{
			{name: "valid", itemName: "Harira", quantity: 1, price: 650},
			{name: "free item is valid", itemName: "Bread", quantity: 2, price: 0},
			{name: "blank name", itemName: "  ", quantity: 1, price: 650, errIs: order.ErrItemName},
			{name: "zero quantity", itemName: "Harira", quantity: 0, price: 650, errIs: order.ErrInvalidQuantity},
			{name: "negative price", itemName: "Harira", quantity: 1, price: -1, errIs: order.ErrInvalidPrice},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewLine("ref", tc.itemName, tc.quantity, tc.price)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("totals are computed server side", func(t *testing.T) {
		l1, err := order.NewLine("a", "Couscous Royal", 3, 1850)
		require.NoError(t, err)
		l2, err := order.NewLine("b", "Mint Tea", 2, 350)
		require.NoError(t, err)

		assert.Equal(t, int64(5550), l1.SubtotalCents())
		assert.Equal(t, int64(6250), order.TotalCents([]order.Line{l1, l2}))
	})
}
