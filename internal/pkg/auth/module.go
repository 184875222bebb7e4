package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/printshop/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Provide(newTokenStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewJWTStrategy(p.Config.AuthSecret, Options{TTL: p.Config.TokenTTL})
}
