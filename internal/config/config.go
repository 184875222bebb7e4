package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module exposes configuration loader for fx graphs.
var Module = fx.Provide(Load)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	AuthSecret       string
	TokenTTL         time.Duration
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
	AutoMigrate      bool
	KafkaBrokers     []string
	KafkaStatusTopic string
	EventWorkers     int
	EventBuffer      int
	LogLevel         slog.Level
}

const (
	defaultRunAddress       = ":8080"
	defaultTokenTTL         = 24 * time.Hour
	defaultRequestTimeout   = 5 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultKafkaStatusTopic = "order-status-changed"
	defaultEventWorkers     = 2
	defaultEventBuffer      = 256
	defaultEnvFile          = ".env"
)

// Load parses configuration from process flags and environment variables and
// checks that required values are present.
func Load() (*Config, error) {
	cfg, err := Parse(os.Args[1:])
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse builds configuration from args and the environment without checking
// required values. Values from an optional .env file (ENV_FILE overrides the
// path) never replace variables already present in the environment.
func Parse(args []string) (*Config, error) {
	path := defaultEnvFile
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		path = v
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return load(args, os.LookupEnv)
}

// Validate reports missing values the service cannot start without.
func (c *Config) Validate() error {
	if err := c.RequireDatabase(); err != nil {
		return err
	}
	return c.RequireAuthSecret()
}

// RequireDatabase reports a missing DSN.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURI == "" {
		return fmt.Errorf("database URI must be provided")
	}
	return nil
}

// RequireAuthSecret reports a missing token signing secret. There is no
// built-in default.
func (c *Config) RequireAuthSecret() error {
	if c.AuthSecret == "" {
		return fmt.Errorf("auth secret must be provided via AUTH_SECRET or AUTH_SECRET_FILE")
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		AuthSecret:       getString(lookup, "AUTH_SECRET", ""),
		TokenTTL:         getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		RequestTimeout:   getDuration(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		AutoMigrate:      getBool(lookup, "AUTO_MIGRATE", false),
		KafkaStatusTopic: getString(lookup, "KAFKA_STATUS_TOPIC", defaultKafkaStatusTopic),
		EventWorkers:     getInt(lookup, "EVENT_WORKERS", defaultEventWorkers),
		EventBuffer:      getInt(lookup, "EVENT_BUFFER", defaultEventBuffer),
	}

	fs := flag.NewFlagSet("printshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		requestTimeoutStr  = cfg.RequestTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		brokersStr         = getString(lookup, "KAFKA_BROKERS", "")
		logLevelStr        = getString(lookup, "LOG_LEVEL", "info")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for verifying caller tokens")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Per-request processing timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.AutoMigrate, "migrate", cfg.AutoMigrate, "Apply database migrations on startup")
	fs.StringVar(&brokersStr, "kafka-brokers", brokersStr, "Comma separated Kafka brokers for status events")
	fs.StringVar(&cfg.KafkaStatusTopic, "kafka-topic", cfg.KafkaStatusTopic, "Kafka topic for status events")
	fs.IntVar(&cfg.EventWorkers, "event-workers", cfg.EventWorkers, "Number of concurrent event publishers")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg.KafkaBrokers = splitList(brokersStr)

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.EventWorkers <= 0 {
		cfg.EventWorkers = defaultEventWorkers
	}

	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = defaultEventBuffer
	}

	if cfg.KafkaStatusTopic == "" {
		cfg.KafkaStatusTopic = defaultKafkaStatusTopic
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
