package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/printshop/internal/adapter/kafka"
	"github.com/polkiloo/printshop/internal/app"
	"github.com/polkiloo/printshop/internal/config"
	"github.com/polkiloo/printshop/internal/logger"
	"github.com/polkiloo/printshop/internal/pkg/auth"
	"github.com/polkiloo/printshop/internal/server/http/router"
	"github.com/polkiloo/printshop/internal/storage/postgres"
	"github.com/polkiloo/printshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		kafka.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
