package response

import (
	"time"

	"almaaz-api/internal/domain/order"

	"github.com/google/uuid"
)

type OrderLineResponse struct {
	ItemRef        string `json:"itemRef"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	SubtotalCents  int64  `json:"subtotalCents"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerID    uuid.UUID           `json:"customerId"`
	Items         []OrderLineResponse `json:"items"`
	TotalCents    int64               `json:"totalCents"`
	OrderType     string              `json:"orderType"`
	Status        string              `json:"status"`
	DiningDate    string              `json:"diningDate,omitempty"`
	DiningTime    string              `json:"diningTime,omitempty"`
	TableNumber   int                 `json:"tableNumber,omitempty"`
	PaymentStatus string              `json:"paymentStatus"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
	PaymentID     string              `json:"paymentId,omitempty"`
	CustomerNote  string              `json:"customerNote,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func FromOrder(o *order.Order) *OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines()))
	for i, l := range o.Lines() {
		lines[i] = OrderLineResponse{
			ItemRef:        l.ItemRef,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			SubtotalCents:  l.SubtotalCents(),
		}
	}
	return &OrderResponse{
		ID:            o.ID(),
		CustomerID:    o.CustomerID(),
		Items:         lines,
		TotalCents:    o.TotalCents(),
		OrderType:     string(o.Type()),
		Status:        string(o.Status()),
		DiningDate:    o.DiningDate(),
		DiningTime:    o.DiningTime(),
		TableNumber:   o.TableNumber(),
		PaymentStatus: string(o.PaymentStatus()),
		PaymentMethod: string(o.PaymentMethod()),
		PaymentID:     o.PaymentID(),
		CustomerNote:  o.CustomerNote(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func FromOrders(items []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, len(items))
	for i, o := range items {
		out[i] = FromOrder(o)
	}
	return out
}
