package order

import (
	"errors"
	"strings"
	"time"

	"almaaz-api/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrBackwardTransition = errors.New("order status cannot move backward")
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrImmutable          = errors.New("delivered orders are immutable")
)

// Order is a customer food order. A pre-order additionally claims a
// (date, time, table) triple on the table ledger; the claim is released once
// the order is Delivered.
type Order struct {
	id            uuid.UUID
	customerID    uuid.UUID
	lines         []Line
	totalCents    int64
	orderType     OrderType
	status        Status
	diningDate    string
	diningTime    string
	tableNumber   int
	paymentStatus PaymentStatus
	paymentMethod PaymentMethod
	paymentID     string
	customerNote  string
	createdAt     time.Time
	updatedAt     time.Time
}

func newOrder(customerID uuid.UUID, lines []Line, method PaymentMethod, note string, now time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoItems
	}
	if method == "" {
		method = PaymentMethodNone
	}
	if !method.IsValid() {
		return nil, errors.New("unknown payment method")
	}

	o := &Order{
		id:            uuid.New(),
		customerID:    customerID,
		lines:         lines,
		totalCents:    TotalCents(lines),
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		paymentMethod: method,
		customerNote:  strings.TrimSpace(note),
		createdAt:     now,
		updatedAt:     now,
	}

	// Card payments are pre-validated upstream; all we record is the paid
	// flag and an opaque settlement token.
	if method == PaymentMethodCard {
		o.paymentStatus = PaymentPaid
		o.paymentID = NewPaymentID()
	}

	return o, nil
}

// NewDineIn creates an immediate dine-in order. No table claim is involved.
func NewDineIn(customerID uuid.UUID, lines []Line, method PaymentMethod, note string, now time.Time) (*Order, error) {
	o, err := newOrder(customerID, lines, method, note, now)
	if err != nil {
		return nil, err
	}
	o.orderType = TypeDineIn
	return o, nil
}

// NewPreOrder creates a pre-order for a specific table and dining slot. The
// key is validated here; the exclusivity claim itself is the ledger's job.
func NewPreOrder(
	customerID uuid.UUID,
	lines []Line,
	date, timeOfDay string,
	tableNumber int,
	method PaymentMethod,
	note string,
	now time.Time,
) (*Order, error) {
	if err := booking.ValidateTableKey(booking.TableKey(date, timeOfDay, tableNumber), now); err != nil {
		return nil, err
	}

	o, err := newOrder(customerID, lines, method, note, now)
	if err != nil {
		return nil, err
	}
	o.orderType = TypePreOrder
	o.diningDate = date
	o.diningTime = timeOfDay
	o.tableNumber = tableNumber
	return o, nil
}

func Reconstruct(
	id, customerID uuid.UUID,
	lines []Line,
	totalCents int64,
	orderType OrderType,
	status Status,
	diningDate, diningTime string,
	tableNumber int,
	paymentStatus PaymentStatus,
	paymentMethod PaymentMethod,
	paymentID, customerNote string,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:            id,
		customerID:    customerID,
		lines:         lines,
		totalCents:    totalCents,
		orderType:     orderType,
		status:        status,
		diningDate:    diningDate,
		diningTime:    diningTime,
		tableNumber:   tableNumber,
		paymentStatus: paymentStatus,
		paymentMethod: paymentMethod,
		paymentID:     paymentID,
		customerNote:  customerNote,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// AdvanceTo moves the order along Pending -> Preparing -> Ready -> Delivered.
// Forward moves (including skips) are accepted, the same status is a no-op,
// and backward moves are rejected. Once Delivered the order is immutable.
func (o *Order) AdvanceTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrUnknownStatus
	}
	if o.status == next {
		return nil
	}
	if o.status == StatusDelivered {
		return ErrImmutable
	}
	if next.Before(o.status) {
		return ErrBackwardTransition
	}
	o.status = next
	o.updatedAt = now
	return nil
}

// IsLive reports whether a pre-order still holds its table claim.
func (o *Order) IsLive() bool {
	return o.orderType == TypePreOrder && o.status != StatusDelivered
}

func (o *Order) Key() booking.Key {
	return booking.TableKey(o.diningDate, o.diningTime, o.tableNumber)
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) CustomerID() uuid.UUID        { return o.customerID }
func (o *Order) Lines() []Line                { return o.lines }
func (o *Order) TotalCents() int64            { return o.totalCents }
func (o *Order) Type() OrderType              { return o.orderType }
func (o *Order) Status() Status               { return o.status }
func (o *Order) DiningDate() string           { return o.diningDate }
func (o *Order) DiningTime() string           { return o.diningTime }
func (o *Order) TableNumber() int             { return o.tableNumber }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentID() string            { return o.paymentID }
func (o *Order) CustomerNote() string         { return o.customerNote }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
