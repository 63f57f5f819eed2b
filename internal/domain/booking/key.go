package booking

import (
	"errors"
	"fmt"
	"time"

	"almaaz-api/internal/domain/table"
)

var (
	ErrDateRequired = errors.New("date is required")
	ErrTimeRequired = errors.New("time is required")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrDateInPast   = errors.New("date cannot be in the past")
	ErrInvalidSlot  = errors.New("time is not an offered slot")
	ErrInvalidTable = errors.New("table number is not in the inventory")
)

// Scope identifies which ledger a claim belongs to. Keys from different
// scopes never conflict with each other.
type Scope string

const (
	ScopeSlot  Scope = "slot"
	ScopeTable Scope = "table"
)

// Key is the exclusivity tuple for a claim: (date, time) for the
// reservation slot ledger, (date, time, table) for the table ledger.
// Table is 0 in slot scope.
type Key struct {
	Date  string
	Time  string
	Table int
}

func SlotKey(date, timeOfDay string) Key {
	return Key{Date: date, Time: timeOfDay}
}

func TableKey(date, timeOfDay string, tableNumber int) Key {
	return Key{Date: date, Time: timeOfDay, Table: tableNumber}
}

func (k Key) String() string {
	if k.Table == 0 {
		return k.Date + "@" + k.Time
	}
	return fmt.Sprintf("%s@%s#%d", k.Date, k.Time, k.Table)
}

const DateLayout = "2006-01-02"

// reservationSlots are the offered reservation times; diningSlots extend
// them with the two late-morning seatings offered to pre-orders only.
var reservationSlots = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00",
	"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00",
}

var diningSlots = append([]string{"11:00", "11:30"}, reservationSlots...)

func ReservationSlots() []string {
	out := make([]string, len(reservationSlots))
	copy(out, reservationSlots)
	return out
}

func DiningSlots() []string {
	out := make([]string, len(diningSlots))
	copy(out, diningSlots)
	return out
}

func isOffered(slots []string, timeOfDay string) bool {
	for _, s := range slots {
		if s == timeOfDay {
			return true
		}
	}
	return false
}

func validateDate(date string, now time.Time) error {
	if date == "" {
		return ErrDateRequired
	}
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return ErrInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrDateInPast
	}
	return nil
}

// ValidateSlotKey checks a reservation-ledger key against the key domain:
// a well-formed future date and an offered reservation slot.
func ValidateSlotKey(k Key, now time.Time) error {
	if err := validateDate(k.Date, now); err != nil {
		return err
	}
	if k.Time == "" {
		return ErrTimeRequired
	}
	if !isOffered(reservationSlots, k.Time) {
		return ErrInvalidSlot
	}
	return nil
}

// ValidateTableKey checks a table-ledger key: future date, an offered dining
// slot, and a table number inside the fixed inventory.
func ValidateTableKey(k Key, now time.Time) error {
	if err := validateDate(k.Date, now); err != nil {
		return err
	}
	if k.Time == "" {
		return ErrTimeRequired
	}
	if !isOffered(diningSlots, k.Time) {
		return ErrInvalidSlot
	}
	if !table.IsValidNumber(k.Table) {
		return ErrInvalidTable
	}
	return nil
}
