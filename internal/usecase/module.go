package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/printshop/internal/fsm"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	fsm.NewOrderStateMachine,
	NewAuthUseCase,
	NewOrderUseCase,
)
