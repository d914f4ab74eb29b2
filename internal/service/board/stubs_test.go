package board_test

import (
	"context"
	"sync"

	"service-gestor/internal/domain"
	"service-gestor/internal/ports/ordertx"
)

// storeStub is an in-memory transaction runner: a failing fn leaves the state untouched.
type storeStub struct {
	mu       sync.Mutex
	orders   map[string]domain.Order
	couriers map[int64]domain.Courier
	calls    int

	failWith error
	started  chan string
	release  chan struct{}
}

func newStoreStub(orders []domain.Order, couriers []domain.Courier) *storeStub {
	s := &storeStub{
		orders:   make(map[string]domain.Order),
		couriers: make(map[int64]domain.Courier),
	}
	for _, o := range orders {
		s.orders[o.ID] = o.Clone()
	}
	for _, c := range couriers {
		s.couriers[c.ID] = c.Clone()
	}
	return s
}

func (s *storeStub) WithTx(ctx context.Context, fn func(tx ordertx.Repository) error) error {
	s.mu.Lock()
	s.calls++
	tx := &txStub{
		orders:   make(map[string]domain.Order, len(s.orders)),
		couriers: make(map[int64]domain.Courier, len(s.couriers)),
	}
	for k, v := range s.orders {
		tx.orders[k] = v.Clone()
	}
	for k, v := range s.couriers {
		tx.couriers[k] = v.Clone()
	}
	s.mu.Unlock()

	if s.started != nil {
		s.started <- "tx"
	}
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.failWith != nil {
		return s.failWith
	}
	if err := fn(tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range tx.orders {
		s.orders[k] = v
	}
	for k, v := range tx.couriers {
		s.couriers[k] = v
	}
	return nil
}

func (s *storeStub) order(id string) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id].Clone()
}

func (s *storeStub) courier(id int64) domain.Courier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.couriers[id].Clone()
}

func (s *storeStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type txStub struct {
	orders   map[string]domain.Order
	couriers map[int64]domain.Courier
}

func (t *txStub) GetOrderForUpdate(_ context.Context, id string) (*domain.Order, error) {
	o, ok := t.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (t *txStub) GetCourierForUpdate(_ context.Context, id int64) (*domain.Courier, error) {
	c, ok := t.couriers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (t *txStub) UpdateOrder(_ context.Context, o domain.Order) error {
	t.orders[o.ID] = o.Clone()
	return nil
}

func (t *txStub) UpdateCourier(_ context.Context, c domain.Courier) error {
	t.couriers[c.ID] = c.Clone()
	return nil
}

// auditStub keeps every recorded entry.
type auditStub struct {
	mu      sync.Mutex
	entries []domain.OrderLog
}

func (a *auditStub) Record(_ context.Context, entry domain.OrderLog) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

func (a *auditStub) all() []domain.OrderLog {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.OrderLog(nil), a.entries...)
}
