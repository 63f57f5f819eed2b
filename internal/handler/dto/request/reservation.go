package request

import (
	"strings"

	"almaaz-api/internal/usecase"
)

type CreateReservationRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests int    `json:"guests" binding:"required"`
}

func (r CreateReservationRequest) ToParams() usecase.ReserveParams {
	return usecase.ReserveParams{
		Name:   strings.TrimSpace(r.Name),
		Email:  strings.TrimSpace(r.Email),
		Phone:  strings.TrimSpace(r.Phone),
		Date:   strings.TrimSpace(r.Date),
		Time:   strings.TrimSpace(r.Time),
		Guests: r.Guests,
	}
}
