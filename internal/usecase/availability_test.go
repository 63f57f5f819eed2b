//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"almaaz-api/internal/domain/booking"
	"almaaz-api/internal/domain/order"
	"almaaz-api/internal/domain/table"
	"almaaz-api/internal/infra/repository/memory"
	"almaaz-api/internal/pkg/clock"
	"almaaz-api/internal/usecase"
	"almaaz-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCache is a transparent in-process stand-in for Redis.
type recordingCache struct {
	mu   sync.Mutex
	data map[string][]usecase.TableAvailability
	gets int
	hits int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{data: make(map[string][]usecase.TableAvailability)}
}

func (c *recordingCache) Get(_ context.Context, date, timeOfDay string) ([]usecase.TableAvailability, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	snapshot, ok := c.data[date+"@"+timeOfDay]
	if ok {
		c.hits++
	}
	return snapshot, ok
}

func (c *recordingCache) Set(_ context.Context, date, timeOfDay string, snapshot []usecase.TableAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[date+"@"+timeOfDay] = snapshot
}

func (c *recordingCache) Invalidate(_ context.Context, date, timeOfDay string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, date+"@"+timeOfDay)
}

func newAvailabilityFixture(t *testing.T) (usecase.AvailabilityUseCase, usecase.OrderUseCase, *recordingCache) {
	t.Helper()
	repo := memory.NewOrderRepository()
	gate := booking.NewMutexGate(isDuplicate)
	cache := newRecordingCache()
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	orders := usecase.NewOrderUseCase(repo, gate, cache, clk)
	availability := usecase.NewAvailabilityUseCase(repo, cache, clk)
	return availability, orders, cache
}

func TestListTables(t *testing.T) {
	const date, timeOfDay = "2026-03-17", "19:00"

	t.Run("empty ledger shows all tables free", func(t *testing.T) {
		availability, _, _ := newAvailabilityFixture(t)

		snapshot, err := availability.ListTables(context.Background(), date, timeOfDay)
		require.NoError(t, err)

		want := make([]usecase.TableAvailability, 0, table.MaxNumber)
		for _, tbl := range table.All() {
			want = append(want, usecase.TableAvailability{
				TableNumber: tbl.Number,
				Seats:       tbl.Seats,
				Available:   true,
			})
		}
		assert.Empty(t, cmp.Diff(want, snapshot))
	})

	t.Run("claimed tables flip to unavailable", func(t *testing.T) {
		availability, orders, _ := newAvailabilityFixture(t)

		for _, n := range []int{2, 7} {
			b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
				b.DiningDate = date
				b.DiningTime = timeOfDay
				b.TableNumber = n
			})
			_, err := orders.PlaceOrder(context.Background(), customer(), b.BuildParams())
			require.NoError(t, err)
		}

		snapshot, err := availability.ListTables(context.Background(), date, timeOfDay)
		require.NoError(t, err)
		require.Len(t, snapshot, table.MaxNumber)
		for _, row := range snapshot {
			wantFree := row.TableNumber != 2 && row.TableNumber != 7
			assert.Equal(t, wantFree, row.Available, "table %d", row.TableNumber)
		}
	})

	t.Run("delivered orders free their table", func(t *testing.T) {
		availability, orders, _ := newAvailabilityFixture(t)

		b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.DiningDate = date
			b.DiningTime = timeOfDay
			b.TableNumber = 4
		})
		o, err := orders.PlaceOrder(context.Background(), customer(), b.BuildParams())
		require.NoError(t, err)

		_, err = orders.AdvanceStatus(context.Background(), admin(), o.ID(), order.StatusDelivered)
		require.NoError(t, err)

		snapshot, err := availability.ListTables(context.Background(), date, timeOfDay)
		require.NoError(t, err)
		assert.True(t, snapshot[3].Available, "delivered order no longer occupies table 4")
	})

	t.Run("second read hits the cache", func(t *testing.T) {
		availability, _, cache := newAvailabilityFixture(t)

		first, err := availability.ListTables(context.Background(), date, timeOfDay)
		require.NoError(t, err)
		second, err := availability.ListTables(context.Background(), date, timeOfDay)
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(first, second))
		assert.Equal(t, 2, cache.gets)
		assert.Equal(t, 1, cache.hits)
	})

	t.Run("placing a pre-order invalidates the snapshot", func(t *testing.T) {
		availability, orders, _ := newAvailabilityFixture(t)

		_, err := availability.ListTables(context.Background(), date, timeOfDay)
		require.NoError(t, err)

		b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.DiningDate = date
			b.DiningTime = timeOfDay
			b.TableNumber = 9
		})
		_, err = orders.PlaceOrder(context.Background(), customer(), b.BuildParams())
		require.NoError(t, err)

		snapshot, err := availability.ListTables(context.Background(), date, timeOfDay)
		require.NoError(t, err)
		assert.False(t, snapshot[8].Available, "fresh snapshot reflects the new claim")
	})

	t.Run("validation", func(t *testing.T) {
		availability, _, _ := newAvailabilityFixture(t)

		cases := []struct {
			name      string
			date      string
			timeOfDay string
			errIs     error
		}{
			{name: "missing date", date: "", timeOfDay: timeOfDay, errIs: booking.ErrDateRequired},
			{name: "past date", date: "2026-03-01", timeOfDay: timeOfDay, errIs: booking.ErrDateInPast},
			{name: "off-grid time", date: date, timeOfDay: "16:20", errIs: booking.ErrInvalidSlot},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := availability.ListTables(context.Background(), tc.date, tc.timeOfDay)
				require.ErrorIs(t, err, usecase.ErrValidation)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
