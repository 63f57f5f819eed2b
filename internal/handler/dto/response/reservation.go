package response

import (
	"time"

	"almaaz-api/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Guests     int       `json:"guests"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID(),
		CustomerID: r.CustomerID(),
		Name:       r.Name(),
		Email:      r.Email(),
		Phone:      r.Phone(),
		Date:       r.Date(),
		Time:       r.Time(),
		Guests:     r.Guests(),
		Status:     string(r.Status()),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func FromReservations(items []*reservation.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, len(items))
	for i, r := range items {
		out[i] = FromReservation(r)
	}
	return out
}
