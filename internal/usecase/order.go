package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/printshop/internal/domain/errors"
	"github.com/polkiloo/printshop/internal/domain/model"
	"github.com/polkiloo/printshop/internal/domain/repository"
	"github.com/polkiloo/printshop/internal/fsm"
)

// StatusNotifier receives status changes after they are persisted.
type StatusNotifier interface {
	Enqueue(change model.StatusChange)
}

type nopNotifier struct{}

func (nopNotifier) Enqueue(model.StatusChange) {}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	machine  *fsm.OrderStateMachine
	notifier StatusNotifier
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase. A nil notifier disables change notifications.
func NewOrderUseCase(orders repository.OrderRepository, machine *fsm.OrderStateMachine, notifier StatusNotifier) *OrderUseCase {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &OrderUseCase{orders: orders, machine: machine, notifier: notifier, now: time.Now}
}

// Get returns a single order for an administrator.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64, caller model.Caller) (*model.Order, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: administrator rights required", domainErrors.ErrUnauthorized)
	}
	return u.load(ctx, orderID)
}

// Advance applies action to the order and persists the resulting status. The
// write only succeeds while the stored status still equals the one that was
// read, so concurrent requests from the same status cannot both win.
func (u *OrderUseCase) Advance(ctx context.Context, orderID int64, rawAction string, caller model.Caller) (*model.Transition, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: administrator rights required", domainErrors.ErrUnauthorized)
	}

	action, ok := model.ParseAction(rawAction)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidAction, rawAction)
	}

	order, err := u.load(ctx, orderID)
	if err != nil {
		return nil, err
	}

	from := order.Status
	to, err := u.machine.Transition(ctx, from, action)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", order.Number, err)
	}

	updated, err := u.orders.CompareAndSetStatus(ctx, order.ID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrConflict):
			return nil, fmt.Errorf("%w: order %s was modified by another request", domainErrors.ErrConflict, order.Number)
		case errors.Is(err, domainErrors.ErrNotFound):
			return nil, fmt.Errorf("%w: order %d", domainErrors.ErrNotFound, orderID)
		default:
			return nil, fmt.Errorf("update order status: %w", err)
		}
	}

	u.notifier.Enqueue(model.StatusChange{
		EventID:     uuid.NewString(),
		OrderID:     updated.ID,
		OrderNumber: updated.Number,
		From:        from,
		To:          to,
		Action:      action,
		ActorID:     caller.ID,
		OccurredAt:  u.now().UTC(),
	})

	return &model.Transition{Order: updated, From: from, To: to}, nil
}

func (u *OrderUseCase) load(ctx context.Context, orderID int64) (*model.Order, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: order %d", domainErrors.ErrNotFound, orderID)
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: order %d", domainErrors.ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("load order: %w", err)
	}
	return order, nil
}
