package app

import (
	"context"

	"github.com/polkiloo/printshop/internal/domain/model"
	"github.com/polkiloo/printshop/internal/fsm"
	"github.com/polkiloo/printshop/internal/usecase"
)

// HealthChecker reports readiness of the backing store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// AdminFacade exposes the admin operations to the transport layer.
type AdminFacade struct {
	auth    *usecase.AuthUseCase
	orders  *usecase.OrderUseCase
	machine *fsm.OrderStateMachine
	health  HealthChecker
}

func NewAdminFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, machine *fsm.OrderStateMachine, health HealthChecker) *AdminFacade {
	return &AdminFacade{auth: auth, orders: orders, machine: machine, health: health}
}

func (f *AdminFacade) ResolveCaller(token string) (model.Caller, error) {
	return f.auth.ResolveCaller(token)
}

func (f *AdminFacade) AdvanceOrder(ctx context.Context, orderID int64, action string, caller model.Caller) (*model.Transition, error) {
	return f.orders.Advance(ctx, orderID, action, caller)
}

// Order returns the order together with the actions its current status allows.
func (f *AdminFacade) Order(ctx context.Context, orderID int64, caller model.Caller) (*model.Order, []model.Action, error) {
	order, err := f.orders.Get(ctx, orderID, caller)
	if err != nil {
		return nil, nil, err
	}
	return order, f.machine.AvailableActions(order.Status), nil
}

func (f *AdminFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
