package repository

import (
	"context"
	"time"

	"almaaz-api/internal/domain/reservation"
	"almaaz-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts the reservation. The partial unique index on
// (reserved_date, reserved_time) WHERE status = 'Confirmed' makes this the
// atomic conditional insert the booking gate relies on; a duplicate-key
// error here means the slot is already claimed.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const q = `
		INSERT INTO reservations
			(id, customer_id, name, email, phone, reserved_date, reserved_time, guests, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, q,
		res.ID(), res.CustomerID(), res.Name(), res.Email(), res.Phone(),
		res.Date(), res.Time(), res.Guests(), res.Status().String(),
		res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const q = `
		SELECT id, customer_id, name, email, phone, reserved_date, reserved_time, guests, status, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return res, nil
}

// UpdateStatus persists a status transition decided by the domain entity.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	const q = `
		UPDATE reservations
		SET status = $2, updated_at = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, res.ID(), res.Status().String(), res.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*reservation.Reservation, error) {
	const q = `
		SELECT id, customer_id, name, email, phone, reserved_date, reserved_time, guests, status, created_at, updated_at
		FROM reservations
		WHERE customer_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]*reservation.Reservation, error) {
	const q = `
		SELECT id, customer_id, name, email, phone, reserved_date, reserved_time, guests, status, created_at, updated_at
		FROM reservations
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, customerID          uuid.UUID
		name, email, phone      string
		date, timeOfDay, status string
		guests                  int
		createdAt, updatedAt    time.Time
	)
	if err := row.Scan(&id, &customerID, &name, &email, &phone, &date, &timeOfDay, &guests, &status, &createdAt, &updatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("no reservation row", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}

	return reservation.Reconstruct(
		id, customerID, name, email, phone, date, timeOfDay, guests,
		reservation.Status(status), createdAt, updatedAt,
	), nil
}

func collectReservations(rows pgx.Rows) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return out, nil
}
