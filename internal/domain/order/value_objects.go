package order

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrNoItems         = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
	ErrInvalidPrice    = errors.New("item price cannot be negative")
	ErrItemName        = errors.New("item name is required")
)

// Line is one ordered menu item. Name and unit price come from the catalog
// lookup at order time and are frozen onto the order record.
type Line struct {
	ItemRef        string
	Name           string
	Quantity       int
	UnitPriceCents int64
}

func NewLine(itemRef, name string, quantity int, unitPriceCents int64) (Line, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Line{}, ErrItemName
	}
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return Line{}, ErrInvalidPrice
	}
	return Line{
		ItemRef:        itemRef,
		Name:           name,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
	}, nil
}

func (l Line) SubtotalCents() int64 {
	return int64(l.Quantity) * l.UnitPriceCents
}

// TotalCents sums the line subtotals. The caller-supplied total is never
// trusted; this is the only way an order amount is computed.
func TotalCents(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.SubtotalCents()
	}
	return total
}

// NewPaymentID returns an opaque collision-resistant payment token: 128 bits
// from crypto/rand, hex encoded.
func NewPaymentID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in no state to take money
		panic("payment id entropy unavailable: " + err.Error())
	}
	return "PAY_" + hex.EncodeToString(buf)
}
