package request

import (
	"strings"

	"almaaz-api/internal/domain/order"
	"almaaz-api/internal/usecase"
)

type OrderItemRequest struct {
	ItemRef        string `json:"item_ref" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"required"`
}

type PlaceOrderRequest struct {
	Items         []OrderItemRequest `json:"items" binding:"required"`
	OrderType     string             `json:"order_type,omitempty"`
	DiningDate    string             `json:"dining_date,omitempty"`
	DiningTime    string             `json:"dining_time,omitempty"`
	TableNumber   int                `json:"table_number,omitempty"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	CustomerNote  string             `json:"customer_note,omitempty"`
}

func (r PlaceOrderRequest) ToParams() usecase.PlaceOrderParams {
	items := make([]usecase.OrderLineParams, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecase.OrderLineParams{
			ItemRef:        strings.TrimSpace(item.ItemRef),
			Name:           strings.TrimSpace(item.Name),
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return usecase.PlaceOrderParams{
		Items:         items,
		OrderType:     order.OrderType(strings.TrimSpace(r.OrderType)),
		DiningDate:    strings.TrimSpace(r.DiningDate),
		DiningTime:    strings.TrimSpace(r.DiningTime),
		TableNumber:   r.TableNumber,
		PaymentMethod: order.PaymentMethod(strings.TrimSpace(r.PaymentMethod)),
		CustomerNote:  strings.TrimSpace(r.CustomerNote),
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
