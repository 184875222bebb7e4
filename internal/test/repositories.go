package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/printshop/internal/domain/errors"
	"github.com/polkiloo/printshop/internal/domain/model"
)

// StatusWrite stores information about CompareAndSetStatus invocations.
type StatusWrite struct {
	OrderID  int64
	Expected model.OrderStatus
	Next     model.OrderStatus
}

// OrderRepositoryStub keeps orders in memory and implements the conditional
// status write the same way the database does.
type OrderRepositoryStub struct {
	GetByIDFn             func(context.Context, int64) (*model.Order, error)
	CompareAndSetStatusFn func(context.Context, int64, model.OrderStatus, model.OrderStatus) (*model.Order, error)
	// BeforeWrite runs after the order has been read and before the write is
	// attempted, letting tests interleave concurrent modifications.
	BeforeWrite func(orderID int64)

	Writes []StatusWrite

	mu     sync.Mutex
	orders map[int64]model.Order
}

// NewOrderRepositoryStub seeds the stub with orders.
func NewOrderRepositoryStub(orders ...model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{orders: make(map[int64]model.Order, len(orders))}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

// Put stores or replaces an order.
func (s *OrderRepositoryStub) Put(order model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orders == nil {
		s.orders = make(map[int64]model.Order)
	}
	s.orders[order.ID] = order
}

// Status returns the stored status of an order.
func (s *OrderRepositoryStub) Status(id int64) model.OrderStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id].Status
}

// WriteCount returns the number of recorded write attempts.
func (s *OrderRepositoryStub) WriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Writes)
}

// GetByID returns a copy of the stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &order, nil
}

// CompareAndSetStatus swaps the status only when it still equals expected.
func (s *OrderRepositoryStub) CompareAndSetStatus(ctx context.Context, id int64, expected, next model.OrderStatus) (*model.Order, error) {
	if s.BeforeWrite != nil {
		s.BeforeWrite(id)
	}
	if s.CompareAndSetStatusFn != nil {
		return s.CompareAndSetStatusFn(ctx, id, expected, next)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Writes = append(s.Writes, StatusWrite{OrderID: id, Expected: expected, Next: next})
	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if order.Status != expected {
		return nil, domainErrors.ErrConflict
	}
	order.Status = next
	s.orders[id] = order
	return &order, nil
}
