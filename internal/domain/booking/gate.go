package booking

import (
	"context"
	"errors"
	"sync"
)

// ErrClaimConflict is returned when the key already has a live booking.
// Callers may retry with a different key, never with the same one.
var ErrClaimConflict = errors.New("booking key already claimed")

// ClaimFn performs the conditional write for a claim. It must write exactly
// one record on success and nothing at all on failure.
type ClaimFn func(ctx context.Context) error

// Gate serializes check-then-claim for a booking key so that of any set of
// concurrent claims on the same key, exactly one succeeds. Claims on
// different keys proceed in parallel.
type Gate interface {
	TryClaim(ctx context.Context, scope Scope, key Key, claim ClaimFn) error
}

// ConstraintGate delegates mutual exclusion to the store itself: the claim
// function runs an atomic conditional insert (a partial unique index in
// Postgres) and the gate only translates the store's duplicate-key failure
// into ErrClaimConflict. No in-process locking is needed because the commit
// order at the store decides the winner.
type ConstraintGate struct {
	isConflict func(error) bool
}

func NewConstraintGate(isConflict func(error) bool) *ConstraintGate {
	return &ConstraintGate{isConflict: isConflict}
}

func (g *ConstraintGate) TryClaim(ctx context.Context, _ Scope, _ Key, claim ClaimFn) error {
	if err := claim(ctx); err != nil {
		if g.isConflict(err) {
			return ErrClaimConflict
		}
		return err
	}
	return nil
}

// MutexGate is the fallback for stores without conditional inserts: it holds
// a per-(scope,key) lock around the whole check-then-write sequence. The
// lock arena is process-wide, so it is only sound when a single process owns
// the store. Locks are single-slot channels so a caller whose context is
// cancelled while queued behind the holder gives up with ctx.Err() instead
// of blocking until release.
type MutexGate struct {
	mu    sync.Mutex
	locks map[string]chan struct{}

	isConflict func(error) bool
}

func NewMutexGate(isConflict func(error) bool) *MutexGate {
	return &MutexGate{
		locks:      make(map[string]chan struct{}),
		isConflict: isConflict,
	}
}

func (g *MutexGate) lockFor(scope Scope, key Key) chan struct{} {
	id := string(scope) + "/" + key.String()

	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.locks[id]
	if !ok {
		l = make(chan struct{}, 1)
		g.locks[id] = l
	}
	return l
}

func (g *MutexGate) TryClaim(ctx context.Context, scope Scope, key Key, claim ClaimFn) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := g.lockFor(scope, key)
	select {
	case l <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-l }()

	if err := claim(ctx); err != nil {
		if g.isConflict(err) {
			return ErrClaimConflict
		}
		return err
	}
	return nil
}
