package table

// The dining room has a fixed inventory of 12 numbered tables. Seat counts
// are a pure function of the table number and never change at runtime, so
// the inventory is safe to share without synchronization.

const (
	MinNumber = 1
	MaxNumber = 12
)

type Table struct {
	Number int
	Seats  int
}

func IsValidNumber(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// SeatsFor returns the seat capacity for a table number: tables 1-4 seat 2,
// 5-8 seat 4, 9-12 seat 6. Returns 0 for numbers outside the inventory.
func SeatsFor(n int) int {
	switch {
	case n >= 1 && n <= 4:
		return 2
	case n >= 5 && n <= 8:
		return 4
	case n >= 9 && n <= 12:
		return 6
	default:
		return 0
	}
}

// All returns the full inventory in table-number order.
func All() []Table {
	tables := make([]Table, 0, MaxNumber)
	for n := MinNumber; n <= MaxNumber; n++ {
		tables = append(tables, Table{Number: n, Seats: SeatsFor(n)})
	}
	return tables
}
