package repository

import (
	"context"

	"github.com/polkiloo/printshop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// CompareAndSetStatus writes next only while the stored status still equals
	// expected. It returns ErrConflict when the order moved on and ErrNotFound
	// when it no longer exists.
	CompareAndSetStatus(ctx context.Context, id int64, expected, next model.OrderStatus) (*model.Order, error)
}
