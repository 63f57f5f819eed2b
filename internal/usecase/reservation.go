package usecase

import (
	"context"
	"errors"

	"almaaz-api/internal/domain/booking"
	"almaaz-api/internal/domain/reservation"
	"almaaz-api/internal/infra"
	"almaaz-api/internal/pkg/clock"
	"almaaz-api/internal/pkg/errs"
	"almaaz-api/internal/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrSlotTaken           = errors.New("time slot already booked, choose a different time")
	ErrReservationNotFound = errors.New("reservation not found")
)

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*reservation.Reservation, error)
	ListAll(ctx context.Context) ([]*reservation.Reservation, error)
}

type ReserveParams struct {
	Name   string
	Email  string
	Phone  string
	Date   string
	Time   string
	Guests int
}

type ReservationUseCase interface {
	Reserve(ctx context.Context, actor Actor, params ReserveParams) (*reservation.Reservation, error)
	Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*reservation.Reservation, error)
	ListMine(ctx context.Context, actor Actor) ([]*reservation.Reservation, error)
	ListAll(ctx context.Context, actor Actor) ([]*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	repo  ReservationRepository
	gate  booking.Gate
	clock clock.Clock
}

func NewReservationUseCase(repo ReservationRepository, gate booking.Gate, clk clock.Clock) ReservationUseCase {
	return &reservationUseCaseImpl{
		repo:  repo,
		gate:  gate,
		clock: clk,
	}
}

// Reserve claims the restaurant-wide (date, time) slot. Validation happens
// entirely before the gate; the gated region is only the conditional insert.
func (u *reservationUseCaseImpl) Reserve(ctx context.Context, actor Actor, params ReserveParams) (*reservation.Reservation, error) {
	res, err := reservation.NewReservation(
		actor.ID,
		params.Name, params.Email, params.Phone,
		params.Date, params.Time, params.Guests,
		u.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = u.gate.TryClaim(ctx, booking.ScopeSlot, res.Key(), func(ctx context.Context) error {
		return u.repo.Create(ctx, res)
	})
	if err != nil {
		if errors.Is(err, booking.ErrClaimConflict) {
			metrics.IncClaimConflict(string(booking.ScopeSlot))
			return nil, ErrSlotTaken
		}
		return nil, classifyStoreErr(err, "failed to reserve slot")
	}

	metrics.IncClaimGranted(string(booking.ScopeSlot))
	return res, nil
}

// Cancel releases the slot. Only the owning customer or an admin may cancel;
// cancelling an already cancelled reservation is a no-op success.
func (u *reservationUseCaseImpl) Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, classifyStoreErr(err, "failed to load reservation")
	}

	if res.CustomerID() != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if !res.IsLive() {
		return res, nil
	}

	res.Cancel(u.clock.Now())
	if err := u.repo.UpdateStatus(ctx, res); err != nil {
		return nil, classifyStoreErr(err, "failed to cancel reservation")
	}
	return res, nil
}

func (u *reservationUseCaseImpl) ListMine(ctx context.Context, actor Actor) ([]*reservation.Reservation, error) {
	out, err := u.repo.ListByCustomer(ctx, actor.ID)
	if err != nil {
		return nil, classifyStoreErr(err, "failed to list reservations")
	}
	return out, nil
}

func (u *reservationUseCaseImpl) ListAll(ctx context.Context, actor Actor) ([]*reservation.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	out, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, classifyStoreErr(err, "failed to list reservations")
	}
	return out, nil
}

// classifyStoreErr maps persistence failures onto the caller-facing
// taxonomy: outages are retryable, the rest surface as wrapped internals.
func classifyStoreErr(err error, msg string) error {
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return errs.Wrap(err, msg)
}
