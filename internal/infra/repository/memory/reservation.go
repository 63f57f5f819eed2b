// Package memory holds map-backed repositories with the same error contract
// as the Postgres ones. They have no conditional-insert support of their
// own beyond a coarse mutex, so they are paired with the mutex booking gate.
package memory

import (
	"context"
	"sort"
	"sync"

	"almaaz-api/internal/domain/reservation"
	"almaaz-api/internal/infra"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*reservation.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{
		byID: make(map[uuid.UUID]*reservation.Reservation),
	}
}

func (r *ReservationRepository) Create(_ context.Context, res *reservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.IsLive() && existing.Key() == res.Key() {
			return infra.WrapRepoErr("slot already reserved", nil, infra.KindDuplicateKey)
		}
	}
	r.byID[res.ID()] = res
	return nil
}

func (r *ReservationRepository) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(_ context.Context, res *reservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.byID[res.ID()] = res
	return nil
}

func (r *ReservationRepository) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*reservation.Reservation
	for _, res := range r.byID {
		if res.CustomerID() == customerID {
			out = append(out, res)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *ReservationRepository) ListAll(_ context.Context) ([]*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*reservation.Reservation, 0, len(r.byID))
	for _, res := range r.byID {
		out = append(out, res)
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(rs []*reservation.Reservation) {
	sort.Slice(rs, func(i, j int) bool {
		return rs[i].CreatedAt().After(rs[j].CreatedAt())
	})
}
