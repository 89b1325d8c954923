package memory

import (
	"context"
	"sync"

	"lesson-booking/internal/domain/order"
	"lesson-booking/internal/infra"
	"lesson-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type OrderStore struct {
	mu      sync.RWMutex
	orders  map[uuid.UUID]*order.Order
	inserts []uuid.UUID
	clock   clock.Clock
}

func NewOrderStore(clk clock.Clock) *OrderStore {
	return &OrderStore{
		orders: make(map[uuid.UUID]*order.Order),
		clock:  clk,
	}
}

func (s *OrderStore) Create(_ context.Context, o *order.Order) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID()]; ok {
		return nil, infra.WrapRepoErr("order already exists", nil, infra.KindConflict)
	}
	stored := order.Reconstruct(o.ID(), o.Name(), o.Phone(), o.LessonIDs(), o.Space(), s.clock.Now())
	s.orders[o.ID()] = stored
	s.inserts = append(s.inserts, o.ID())
	return stored, nil
}

func (s *OrderStore) FindAll(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*order.Order, 0, len(s.orders))
	for _, id := range s.inserts {
		out = append(out, s.orders[id])
	}
	return out, nil
}
