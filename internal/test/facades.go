package test

import (
	"context"

	domainErrors "github.com/polkiloo/printshop/internal/domain/errors"
	"github.com/polkiloo/printshop/internal/domain/model"
)

// AdminFacadeStub provides controllable behaviour for admin endpoints.
type AdminFacadeStub struct {
	CallerResolverStub

	AdvanceFn func(ctx context.Context, orderID int64, action string, caller model.Caller) (*model.Transition, error)
	OrderFn   func(ctx context.Context, orderID int64, caller model.Caller) (*model.Order, []model.Action, error)
	HealthErr error
}

// AdvanceOrder delegates to AdvanceFn or reports a successful PENDING to PAID move.
func (s *AdminFacadeStub) AdvanceOrder(ctx context.Context, orderID int64, action string, caller model.Caller) (*model.Transition, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, orderID, action, caller)
	}
	if !caller.IsAdmin() {
		return nil, domainErrors.ErrUnauthorized
	}
	order := &model.Order{ID: orderID, Number: "PS-1", Status: model.OrderStatusPaid}
	return &model.Transition{Order: order, From: model.OrderStatusPending, To: model.OrderStatusPaid}, nil
}

// Order delegates to OrderFn or returns a pending order.
func (s *AdminFacadeStub) Order(ctx context.Context, orderID int64, caller model.Caller) (*model.Order, []model.Action, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID, caller)
	}
	if !caller.IsAdmin() {
		return nil, nil, domainErrors.ErrUnauthorized
	}
	order := &model.Order{ID: orderID, Number: "PS-1", Status: model.OrderStatusPending, Priority: model.PriorityNormal}
	return order, []model.Action{model.ActionNext, model.ActionCancel}, nil
}

// HealthCheck returns HealthErr.
func (s *AdminFacadeStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

// HealthCheckerStub reports a fixed health state.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns Err.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
