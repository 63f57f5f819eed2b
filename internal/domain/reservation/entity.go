package reservation

import (
	"errors"
	"strings"
	"time"

	"almaaz-api/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	MinGuests = 1
	MaxGuests = 20
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
	ErrPhoneRequired = errors.New("phone is required")
	ErrInvalidGuests = errors.New("guests must be between 1 and 20")
)

// Reservation is a claim on a restaurant-wide (date, time) slot. At most one
// Confirmed reservation may exist per slot; a cancelled one releases it.
type Reservation struct {
	id         uuid.UUID
	customerID uuid.UUID
	name       string
	email      string
	phone      string
	date       string
	timeOfDay  string
	guests     int
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(
	customerID uuid.UUID,
	name, email, phone string,
	date, timeOfDay string,
	guests int,
	now time.Time,
) (*Reservation, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	if guests < MinGuests || guests > MaxGuests {
		return nil, ErrInvalidGuests
	}
	if err := booking.ValidateSlotKey(booking.SlotKey(date, timeOfDay), now); err != nil {
		return nil, err
	}

	return &Reservation{
		id:         uuid.New(),
		customerID: customerID,
		name:       name,
		email:      email,
		phone:      phone,
		date:       date,
		timeOfDay:  timeOfDay,
		guests:     guests,
		status:     StatusConfirmed,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(
	id, customerID uuid.UUID,
	name, email, phone string,
	date, timeOfDay string,
	guests int,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		customerID: customerID,
		name:       name,
		email:      email,
		phone:      phone,
		date:       date,
		timeOfDay:  timeOfDay,
		guests:     guests,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel transitions Confirmed -> Cancelled. Cancelling an already cancelled
// reservation is a no-op; the transition is one-way.
func (r *Reservation) Cancel(now time.Time) {
	if r.status == StatusCancelled {
		return
	}
	r.status = StatusCancelled
	r.updatedAt = now
}

// IsLive reports whether the reservation still occupies its slot.
func (r *Reservation) IsLive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) Key() booking.Key {
	return booking.SlotKey(r.date, r.timeOfDay)
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) Name() string          { return r.name }
func (r *Reservation) Email() string         { return r.email }
func (r *Reservation) Phone() string         { return r.phone }
func (r *Reservation) Date() string          { return r.date }
func (r *Reservation) Time() string          { return r.timeOfDay }
func (r *Reservation) Guests() int           { return r.guests }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
