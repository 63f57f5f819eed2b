package usecase

import (
	"context"

	"almaaz-api/internal/domain/booking"
	"almaaz-api/internal/domain/table"
	"almaaz-api/internal/pkg/clock"
	"almaaz-api/internal/pkg/errs"
)

// TableAvailability is one row of the availability snapshot.
type TableAvailability struct {
	TableNumber int  `json:"table_number"`
	Seats       int  `json:"seats"`
	Available   bool `json:"available"`
}

// AvailabilityCache is a best-effort snapshot store. A miss (or failure)
// just means recomputing from the order repository.
type AvailabilityCache interface {
	Get(ctx context.Context, date, timeOfDay string) ([]TableAvailability, bool)
	Set(ctx context.Context, date, timeOfDay string, snapshot []TableAvailability)
	Invalidate(ctx context.Context, date, timeOfDay string)
}

type AvailabilityUseCase interface {
	ListTables(ctx context.Context, date, timeOfDay string) ([]TableAvailability, error)
}

type availabilityUseCaseImpl struct {
	orders OrderRepository
	cache  AvailabilityCache
	clock  clock.Clock
}

func NewAvailabilityUseCase(orders OrderRepository, cache AvailabilityCache, clk clock.Clock) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		orders: orders,
		cache:  cache,
		clock:  clk,
	}
}

// ListTables answers which tables are free at (date, time). The result is a
// snapshot only: a table shown available can still be lost to a concurrent
// claim, and callers are expected to handle the conflict by re-querying.
func (u *availabilityUseCaseImpl) ListTables(ctx context.Context, date, timeOfDay string) ([]TableAvailability, error) {
	// Table number is irrelevant for the snapshot; validate date and slot
	// with a representative key.
	probe := booking.TableKey(date, timeOfDay, table.MinNumber)
	if err := booking.ValidateTableKey(probe, u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if snapshot, ok := u.cache.Get(ctx, date, timeOfDay); ok {
		return snapshot, nil
	}

	occupied, err := u.orders.LiveTableNumbers(ctx, date, timeOfDay)
	if err != nil {
		return nil, classifyStoreErr(err, "failed to load live tables")
	}

	taken := make(map[int]bool, len(occupied))
	for _, n := range occupied {
		taken[n] = true
	}

	inventory := table.All()
	snapshot := make([]TableAvailability, len(inventory))
	for i, t := range inventory {
		snapshot[i] = TableAvailability{
			TableNumber: t.Number,
			Seats:       t.Seats,
			Available:   !taken[t.Number],
		}
	}

	u.cache.Set(ctx, date, timeOfDay, snapshot)
	return snapshot, nil
}
