//go:build unit

package builder

import (
	"time"

	domorder "almaaz-api/internal/domain/order"
	"almaaz-api/internal/usecase"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	CustomerID    uuid.UUID
	Items         []usecase.OrderLineParams
	OrderType     domorder.OrderType
	DiningDate    string
	DiningTime    string
	TableNumber   int
	PaymentMethod domorder.PaymentMethod
	CustomerNote  string
	Now           time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &OrderBuilder{
		CustomerID: uuid.New(),
		Items: []usecase.OrderLineParams{
			{ItemRef: "couscous-royal", Name: "Couscous Royal", Quantity: 2, UnitPriceCents: 1850},
			{ItemRef: "mint-tea", Name: "Mint Tea", Quantity: 2, UnitPriceCents: 350},
		},
		OrderType:     domorder.TypePreOrder,
		DiningDate:    now.AddDate(0, 0, 7).Format("2006-01-02"),
		DiningTime:    "19:00",
		TableNumber:   5,
		PaymentMethod: domorder.PaymentMethodCard,
		CustomerNote:  "Window seat if possible",
		Now:           now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) buildLines() ([]domorder.Line, error) {
	lines := make([]domorder.Line, 0, len(b.Items))
	for _, item := range b.Items {
		line, err := domorder.NewLine(item.ItemRef, item.Name, item.Quantity, item.UnitPriceCents)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	lines, err := b.buildLines()
	if err != nil {
		return nil, err
	}
	if b.OrderType == domorder.TypeDineIn {
		return domorder.NewDineIn(b.CustomerID, lines, b.PaymentMethod, b.CustomerNote, b.Now)
	}
	return domorder.NewPreOrder(
		b.CustomerID, lines,
		b.DiningDate, b.DiningTime, b.TableNumber,
		b.PaymentMethod, b.CustomerNote, b.Now,
	)
}

func (b *OrderBuilder) BuildParams() usecase.PlaceOrderParams {
	return usecase.PlaceOrderParams{
		Items:         b.Items,
		OrderType:     b.OrderType,
		DiningDate:    b.DiningDate,
		DiningTime:    b.DiningTime,
		TableNumber:   b.TableNumber,
		PaymentMethod: b.PaymentMethod,
		CustomerNote:  b.CustomerNote,
	}
}
