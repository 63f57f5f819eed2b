package response

import "almaaz-api/internal/usecase"

type TableAvailabilityResponse struct {
	Date   string                      `json:"date"`
	Time   string                      `json:"time"`
	Tables []usecase.TableAvailability `json:"tables"`
}
