package memory

import (
	"context"
	"sort"
	"sync"

	"almaaz-api/internal/domain/order"
	"almaaz-api/internal/infra"

	"github.com/google/uuid"
)

type OrderRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*order.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[uuid.UUID]*order.Order),
	}
}

func (r *OrderRepository) Create(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.IsLive() {
		for _, existing := range r.byID {
			if existing.IsLive() && existing.Key() == o.Key() {
				return infra.WrapRepoErr("table already booked", nil, infra.KindDuplicateKey)
			}
		}
	}
	r.byID[o.ID()] = cloneOrder(o)
	return nil
}

// FindByID hands out a detached copy, like a row scan would. Callers mutate
// their own copy and race through UpdateStatus, never through shared state.
func (r *OrderRepository) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, o *order.Order, prev order.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[o.ID()]
	if !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	if stored.Status() != prev {
		return infra.WrapRepoErr("order status changed concurrently", nil, infra.KindStaleUpdate)
	}
	r.byID[o.ID()] = cloneOrder(o)
	return nil
}

func (r *OrderRepository) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*order.Order
	for _, o := range r.byID {
		if o.CustomerID() == customerID {
			out = append(out, cloneOrder(o))
		}
	}
	sortOrdersNewestFirst(out)
	return out, nil
}

func (r *OrderRepository) ListAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*order.Order, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, cloneOrder(o))
	}
	sortOrdersNewestFirst(out)
	return out, nil
}

func (r *OrderRepository) LiveTableNumbers(_ context.Context, date, timeOfDay string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var numbers []int
	for _, o := range r.byID {
		if o.IsLive() && o.DiningDate() == date && o.DiningTime() == timeOfDay {
			numbers = append(numbers, o.TableNumber())
		}
	}
	sort.Ints(numbers)
	return numbers, nil
}

func cloneOrder(o *order.Order) *order.Order {
	lines := make([]order.Line, len(o.Lines()))
	copy(lines, o.Lines())
	return order.Reconstruct(
		o.ID(), o.CustomerID(), lines, o.TotalCents(),
		o.Type(), o.Status(),
		o.DiningDate(), o.DiningTime(), o.TableNumber(),
		o.PaymentStatus(), o.PaymentMethod(),
		o.PaymentID(), o.CustomerNote(),
		o.CreatedAt(), o.UpdatedAt(),
	)
}

func sortOrdersNewestFirst(os []*order.Order) {
	sort.Slice(os, func(i, j int) bool {
		return os[i].CreatedAt().After(os[j].CreatedAt())
	})
}
