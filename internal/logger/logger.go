package logger

import (
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/polkiloo/printshop/internal/config"
)

// Module provides the service logger and installs it as the slog default so
// that packages logging through slog.Default share the same handler.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(slog.SetDefault),
)

// New creates a preconfigured slog.Logger writing JSON to stdout.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(os.Stdout, cfg.LogLevel)
}

func newWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", "printshop"))
}
