package handlers

import (
	"context"

	"github.com/polkiloo/printshop/internal/domain/model"
	"github.com/polkiloo/printshop/internal/server/http/middleware"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	AdvanceOrder(ctx context.Context, orderID int64, action string, caller model.Caller) (*model.Transition, error)
	Order(ctx context.Context, orderID int64, caller model.Caller) (*model.Order, []model.Action, error)
}

// HealthChecker reports readiness of backing services.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// AdminFacade aggregates the full set of operations used across handlers.
type AdminFacade interface {
	middleware.CallerResolver
	OrderFacade
	HealthChecker
}
