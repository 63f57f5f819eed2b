//go:build unit

package builder

import (
	"time"

	domreservation "almaaz-api/internal/domain/reservation"
	"almaaz-api/internal/usecase"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	CustomerID uuid.UUID
	Name       string
	Email      string
	Phone      string
	Date       string
	Time       string
	Guests     int
	Now        time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		CustomerID: uuid.New(),
		Name:       "Amina Haddad",
		Email:      "amina@example.com",
		Phone:      "+212600112233",
		Date:       now.AddDate(0, 0, 7).Format("2006-01-02"),
		Time:       "19:00",
		Guests:     4,
		Now:        now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(
		b.CustomerID,
		b.Name, b.Email, b.Phone,
		b.Date, b.Time, b.Guests,
		b.Now,
	)
}

func (b *ReservationBuilder) BuildParams() usecase.ReserveParams {
	return usecase.ReserveParams{
		Name:   b.Name,
		Email:  b.Email,
		Phone:  b.Phone,
		Date:   b.Date,
		Time:   b.Time,
		Guests: b.Guests,
	}
}
