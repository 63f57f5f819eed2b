//go:build unit

package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"almaaz-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDuplicate = errors.New("duplicate record")

// racyStore mimics a store without atomic conditional inserts: the
// existence check and the write are separate steps, so it is only safe
// under an external lock.
type racyStore struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newRacyStore() *racyStore {
	return &racyStore{keys: make(map[string]bool)}
}

func (s *racyStore) claim(key booking.Key) error {
	s.mu.Lock()
	exists := s.keys[key.String()]
	s.mu.Unlock()

	if exists {
		return errDuplicate
	}

	s.mu.Lock()
	s.keys[key.String()] = true
	s.mu.Unlock()
	return nil
}

func isDuplicate(err error) bool {
	return errors.Is(err, errDuplicate)
}

func TestConstraintGate(t *testing.T) {
	t.Run("passes through success", func(t *testing.T) {
		gate := booking.NewConstraintGate(isDuplicate)
		err := gate.TryClaim(context.Background(), booking.ScopeSlot, booking.SlotKey("2026-03-17", "19:00"), func(context.Context) error {
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("translates duplicate into conflict", func(t *testing.T) {
		gate := booking.NewConstraintGate(isDuplicate)
		err := gate.TryClaim(context.Background(), booking.ScopeSlot, booking.SlotKey("2026-03-17", "19:00"), func(context.Context) error {
			return errDuplicate
		})
		require.ErrorIs(t, err, booking.ErrClaimConflict)
	})

	t.Run("other failures pass through unchanged", func(t *testing.T) {
		gate := booking.NewConstraintGate(isDuplicate)
		storeDown := errors.New("connection refused")
		err := gate.TryClaim(context.Background(), booking.ScopeSlot, booking.SlotKey("2026-03-17", "19:00"), func(context.Context) error {
			return storeDown
		})
		require.ErrorIs(t, err, storeDown)
		assert.NotErrorIs(t, err, booking.ErrClaimConflict)
	})
}

func TestMutexGateSerializesSameKey(t *testing.T) {
	gate := booking.NewMutexGate(isDuplicate)
	store := newRacyStore()
	key := booking.SlotKey("2026-03-17", "19:00")

	const claimers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	granted, conflicts := 0, 0

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := gate.TryClaim(context.Background(), booking.ScopeSlot, key, func(context.Context) error {
				return store.claim(key)
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				granted++
			case errors.Is(err, booking.ErrClaimConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, granted, "exactly one claim must win")
	assert.Equal(t, claimers-1, conflicts)
}

func TestMutexGateIndependentKeys(t *testing.T) {
	gate := booking.NewMutexGate(isDuplicate)
	store := newRacyStore()

	const tables = 12
	var wg sync.WaitGroup
	errs := make([]error, tables)

	for i := 0; i < tables; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := booking.TableKey("2026-03-17", "19:00", n+1)
			errs[n] = gate.TryClaim(context.Background(), booking.ScopeTable, key, func(context.Context) error {
				return store.claim(key)
			})
		}(i)
	}
	wg.Wait()

	for n, err := range errs {
		assert.NoError(t, err, "table %d", n+1)
	}
}

func TestMutexGateScopesDoNotCollide(t *testing.T) {
	gate := booking.NewMutexGate(isDuplicate)
	store := newRacyStore()

	slotKey := booking.SlotKey("2026-03-17", "19:00")
	tableKey := booking.TableKey("2026-03-17", "19:00", 3)

	require.NoError(t, gate.TryClaim(context.Background(), booking.ScopeSlot, slotKey, func(context.Context) error {
		return store.claim(slotKey)
	}))
	require.NoError(t, gate.TryClaim(context.Background(), booking.ScopeTable, tableKey, func(context.Context) error {
		return store.claim(tableKey)
	}))
}

func TestMutexGateCancelledContext(t *testing.T) {
	gate := booking.NewMutexGate(isDuplicate)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := gate.TryClaim(ctx, booking.ScopeSlot, booking.SlotKey("2026-03-17", "19:00"), func(context.Context) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called, "claim must not run after cancellation")
}

func TestMutexGateCancelWhileWaiting(t *testing.T) {
	gate := booking.NewMutexGate(isDuplicate)
	key := booking.SlotKey("2026-03-17", "19:00")

	holding := make(chan struct{})
	release := make(chan struct{})
	holderDone := make(chan error, 1)
	go func() {
		holderDone <- gate.TryClaim(context.Background(), booking.ScopeSlot, key, func(context.Context) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	// The waiter queues behind the holder and then gives up.
	ctx, cancel := context.WithCancel(context.Background())
	claimed := false
	waiterDone := make(chan error, 1)
	go func() {
		waiterDone <- gate.TryClaim(ctx, booking.ScopeSlot, key, func(context.Context) error {
			claimed = true
			return nil
		})
	}()
	cancel()

	require.ErrorIs(t, <-waiterDone, context.Canceled)
	assert.False(t, claimed, "claim must not run after giving up the wait")

	close(release)
	require.NoError(t, <-holderDone)
}
