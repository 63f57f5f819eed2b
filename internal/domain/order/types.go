package order

type OrderType string

const (
	TypeDineIn   OrderType = "dine-in"
	TypePreOrder OrderType = "pre-order"
)

func (t OrderType) String() string {
	return string(t)
}

func (t OrderType) IsValid() bool {
	switch t {
	case TypeDineIn, TypePreOrder:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusDelivered Status = "Delivered"
)

var statusRank = map[Status]int{
	StatusPending:   0,
	StatusPreparing: 1,
	StatusReady:     2,
	StatusDelivered: 3,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// Before reports whether s precedes other on the kitchen pipeline
// Pending -> Preparing -> Ready -> Delivered.
func (s Status) Before(other Status) bool {
	return statusRank[s] < statusRank[other]
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodNone PaymentMethod = "none"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodNone, PaymentMethodCard, PaymentMethodCash:
		return true
	default:
		return false
	}
}
