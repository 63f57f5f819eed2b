//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"almaaz-api/internal/domain/booking"
	"almaaz-api/internal/domain/reservation"
	"almaaz-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.CustomerID, actual.CustomerID())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.True(t, actual.IsLive())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, booking.SlotKey(b.Date, b.Time), actual.Key())
	})

	t.Run("contact validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ReservationBuilder) { b.Name = "" },
				errIs:  reservation.ErrNameRequired,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.ReservationBuilder) { b.Name = "   " },
				errIs:  reservation.ErrNameRequired,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.ReservationBuilder) { b.Email = "" },
				errIs:  reservation.ErrEmailRequired,
			},
			{
				name:   "empty phone",
				mutate: func(b *builder.ReservationBuilder) { b.Phone = "" },
				errIs:  reservation.ErrPhoneRequired,
			},
		})
	})

	t.Run("guest count validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum party",
				mutate: func(b *builder.ReservationBuilder) { b.Guests = reservation.MinGuests },
			},
			{
				name:   "maximum party",
				mutate: func(b *builder.ReservationBuilder) { b.Guests = reservation.MaxGuests },
			},
			{
				name:   "zero guests",
				mutate: func(b *builder.ReservationBuilder) { b.Guests = 0 },
				errIs:  reservation.ErrInvalidGuests,
			},
			{
				name:   "oversized party",
				mutate: func(b *builder.ReservationBuilder) { b.Guests = reservation.MaxGuests + 1 },
				errIs:  reservation.ErrInvalidGuests,
			},
		})
	})

	t.Run("slot validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "past date",
				mutate: func(b *builder.ReservationBuilder) { b.Date = "2026-03-09" },
				errIs:  booking.ErrDateInPast,
			},
			{
				name:   "unoffered time",
				mutate: func(b *builder.ReservationBuilder) { b.Time = "15:00" },
				errIs:  booking.ErrInvalidSlot,
			},
		})
	})
}

func TestCancel(t *testing.T) {
	b := builder.NewReservationBuilder()
	res, err := b.BuildDomain()
	require.NoError(t, err)

	later := b.Now.Add(2 * time.Hour)
	res.Cancel(later)
	assert.Equal(t, reservation.StatusCancelled, res.Status())
	assert.False(t, res.IsLive())
	assert.Equal(t, later, res.UpdatedAt())

	// Second cancel is a no-op and leaves updatedAt untouched.
	res.Cancel(later.Add(time.Hour))
	assert.Equal(t, reservation.StatusCancelled, res.Status())
	assert.Equal(t, later, res.UpdatedAt())
}

func TestReconstruct(t *testing.T) {
	id, customerID := uuid.New(), uuid.New()
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	res := reservation.Reconstruct(
		id, customerID,
		"Amina Haddad", "amina@example.com", "+212600112233",
		"2026-03-17", "19:00", 4,
		reservation.StatusCancelled,
		createdAt, createdAt,
	)

	assert.Equal(t, id, res.ID())
	assert.Equal(t, reservation.StatusCancelled, res.Status())
	assert.False(t, res.IsLive())
}
