package api

import (
	"errors"
	"net/http"

	resdto "almaaz-api/internal/handler/dto/response"
	"almaaz-api/internal/handler/httperr"
	"almaaz-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Table availability
// @Description Snapshot of free and taken tables at (date, time). Advisory only; a table can be lost to a concurrent claim after the response is sent.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param date query string true "Dining date (YYYY-MM-DD)"
// @Param time query string true "Dining time (HH:MM)"
// @Success 200 {object} resdto.TableAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /orders/tables [get]
func (h *AvailabilityHandler) GetTableAvailability(c *gin.Context) {
	date := c.Query("date")
	timeOfDay := c.Query("time")

	tables, err := h.availabilityUseCase.ListTables(c.Request.Context(), date, timeOfDay)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TableAvailabilityResponse{
		Date:   date,
		Time:   timeOfDay,
		Tables: tables,
	})
}
