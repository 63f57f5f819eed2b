package usecase

import (
	"context"
	"errors"

	"almaaz-api/internal/domain/booking"
	"almaaz-api/internal/domain/order"
	"almaaz-api/internal/infra"
	"almaaz-api/internal/pkg/clock"
	"almaaz-api/internal/pkg/errs"
	"almaaz-api/internal/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrTableTaken     = errors.New("table unavailable for the selected time, choose another")
	ErrOrderNotFound  = errors.New("order not found")
	ErrStatusConflict = errors.New("order was updated concurrently, retry")
)

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, o *order.Order, prev order.Status) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*order.Order, error)
	ListAll(ctx context.Context) ([]*order.Order, error)
	LiveTableNumbers(ctx context.Context, date, timeOfDay string) ([]int, error)
}

type OrderLineParams struct {
	ItemRef        string
	Name           string
	Quantity       int
	UnitPriceCents int64
}

type PlaceOrderParams struct {
	Items         []OrderLineParams
	OrderType     order.OrderType
	DiningDate    string
	DiningTime    string
	TableNumber   int
	PaymentMethod order.PaymentMethod
	CustomerNote  string
}

type OrderUseCase interface {
	PlaceOrder(ctx context.Context, actor Actor, params PlaceOrderParams) (*order.Order, error)
	AdvanceStatus(ctx context.Context, actor Actor, id uuid.UUID, next order.Status) (*order.Order, error)
	ListMine(ctx context.Context, actor Actor) ([]*order.Order, error)
	ListAll(ctx context.Context, actor Actor) ([]*order.Order, error)
}

type orderUseCaseImpl struct {
	repo  OrderRepository
	gate  booking.Gate
	cache AvailabilityCache
	clock clock.Clock
}

func NewOrderUseCase(repo OrderRepository, gate booking.Gate, cache AvailabilityCache, clk clock.Clock) OrderUseCase {
	return &orderUseCaseImpl{
		repo:  repo,
		gate:  gate,
		cache: cache,
		clock: clk,
	}
}

// PlaceOrder creates a dine-in order directly, or routes a pre-order
// through the table gate. Payment simulation and note handling happen while
// building the entity, before any claim is attempted.
func (u *orderUseCaseImpl) PlaceOrder(ctx context.Context, actor Actor, params PlaceOrderParams) (*order.Order, error) {
	lines, err := buildLines(params.Items)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	now := u.clock.Now()

	switch params.OrderType {
	case order.TypeDineIn, "":
		o, err := order.NewDineIn(actor.ID, lines, params.PaymentMethod, params.CustomerNote, now)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
		if err := u.repo.Create(ctx, o); err != nil {
			return nil, classifyStoreErr(err, "failed to create order")
		}
		return o, nil

	case order.TypePreOrder:
		o, err := order.NewPreOrder(
			actor.ID, lines,
			params.DiningDate, params.DiningTime, params.TableNumber,
			params.PaymentMethod, params.CustomerNote, now,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}

		err = u.gate.TryClaim(ctx, booking.ScopeTable, o.Key(), func(ctx context.Context) error {
			return u.repo.Create(ctx, o)
		})
		if err != nil {
			if errors.Is(err, booking.ErrClaimConflict) {
				metrics.IncClaimConflict(string(booking.ScopeTable))
				return nil, ErrTableTaken
			}
			return nil, classifyStoreErr(err, "failed to place pre-order")
		}

		metrics.IncClaimGranted(string(booking.ScopeTable))
		// The claim is durable; the stale snapshot can go.
		u.cache.Invalidate(ctx, o.DiningDate(), o.DiningTime())
		return o, nil

	default:
		return nil, errs.Mark(errs.New("unknown order type"), ErrValidation)
	}
}

// AdvanceStatus is admin-only and forward-only. Reaching Delivered releases
// the table claim, so the availability snapshot is invalidated afterwards.
func (u *orderUseCaseImpl) AdvanceStatus(ctx context.Context, actor Actor, id uuid.UUID, next order.Status) (*order.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	o, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, classifyStoreErr(err, "failed to load order")
	}

	prev := o.Status()
	if err := o.AdvanceTo(next, u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if o.Status() == prev {
		return o, nil
	}

	// The repo commits only if the row still carries prev; losing that race
	// means another admin moved the order first.
	if err := u.repo.UpdateStatus(ctx, o, prev); err != nil {
		switch {
		case infra.IsKind(err, infra.KindStaleUpdate):
			return nil, ErrStatusConflict
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrOrderNotFound
		}
		return nil, classifyStoreErr(err, "failed to advance order status")
	}

	if o.Type() == order.TypePreOrder && o.Status() == order.StatusDelivered {
		u.cache.Invalidate(ctx, o.DiningDate(), o.DiningTime())
	}
	return o, nil
}

func (u *orderUseCaseImpl) ListMine(ctx context.Context, actor Actor) ([]*order.Order, error) {
	out, err := u.repo.ListByCustomer(ctx, actor.ID)
	if err != nil {
		return nil, classifyStoreErr(err, "failed to list orders")
	}
	return out, nil
}

func (u *orderUseCaseImpl) ListAll(ctx context.Context, actor Actor) ([]*order.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	out, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, classifyStoreErr(err, "failed to list orders")
	}
	return out, nil
}

func buildLines(items []OrderLineParams) ([]order.Line, error) {
	if len(items) == 0 {
		return nil, order.ErrNoItems
	}
	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		line, err := order.NewLine(item.ItemRef, item.Name, item.Quantity, item.UnitPriceCents)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
