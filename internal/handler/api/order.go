package api

import (
	"errors"
	"net/http"

	"almaaz-api/internal/domain/order"
	reqdto "almaaz-api/internal/handler/dto/request"
	resdto "almaaz-api/internal/handler/dto/response"
	"almaaz-api/internal/handler/httperr"
	"almaaz-api/internal/handler/middleware"
	"almaaz-api/internal/pkg/errs"
	"almaaz-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// @Summary Place an order
// @Description Dine-in orders are created directly; pre-orders also claim a table at (date, time)
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor in context"), "Internal server error", nil)
		return
	}

	var req reqdto.PlaceOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	o, err := h.orderUseCase.PlaceOrder(c.Request.Context(), actor, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTableTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "This table is no longer available for the selected time. Please choose another.", nil)
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrder(o))
}

// @Summary List my orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor in context"), "Internal server error", nil)
		return
	}

	items, err := h.orderUseCase.ListMine(c.Request.Context(), actor)
	if err != nil {
		h.respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrders(items))
}

// @Summary List all orders
// @Description Admin-only listing across all customers
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /orders/all [get]
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor in context"), "Internal server error", nil)
		return
	}

	items, err := h.orderUseCase.ListAll(c.Request.Context(), actor)
	if err != nil {
		h.respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrders(items))
}

// @Summary Advance order status
// @Description Admin-only; status moves forward only, Delivered releases the table
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor in context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	o, err := h.orderUseCase.AdvanceStatus(c.Request.Context(), actor, id, order.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
		case errors.Is(err, usecase.ErrStatusConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order was updated by someone else. Please retry.", nil)
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(o))
}

func (h *OrderHandler) respondListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
