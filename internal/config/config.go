// Package config loads utxokit settings from UTXOKIT_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/utxokit/internal/pkg/validator"
)

// Prefix is the environment variable prefix for every setting.
const Prefix = "UTXOKIT"

// Cache providers.
const (
	CacheMemory = "memory"
	CacheFile   = "file"
	CacheRedis  = "redis"
)

// Network holds the endpoints of the ledger node.
type Network struct {
	Host           string `envconfig:"HOST" default:"http://127.0.0.1" validate:"required,url"`
	QueryPort      int    `envconfig:"QUERY_PORT" default:"8667" validate:"min=1,max=65535"`
	LedgerPort     int    `envconfig:"LEDGER_PORT" default:"8668" validate:"min=1,max=65535"`
	SubmissionPort int    `envconfig:"SUBMISSION_PORT" default:"8669" validate:"min=1,max=65535"`
	ExplorerPort   int    `envconfig:"EXPLORER_PORT" default:"26657" validate:"min=1,max=65535"`
	TxPageSize     int    `envconfig:"TX_PAGE_SIZE" default:"10" validate:"min=1,max=100"`
}

// HTTP tunes the retrying HTTP transport.
type HTTP struct {
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	RetryMax     int           `envconfig:"RETRY_MAX" default:"4" validate:"min=0"`
	RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN" default:"1s" validate:"gt=0"`
	RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX" default:"30s" validate:"gtefield=RetryWaitMin"`
}

// Cache selects where decrypted UTXOs are kept between runs.
type Cache struct {
	Provider string        `envconfig:"PROVIDER" default:"memory" validate:"oneof=memory file redis"`
	Root     string        `envconfig:"ROOT" default:"cache" validate:"required"`
	TTL      time.Duration `envconfig:"TTL" default:"0s"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required_if=Provider redis"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"min=0"`
}

// Telemetry toggles OTLP export.
type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"utxokit" validate:"required_if=Enabled true"`
}

// Config is the full set of utxokit settings. Nested groups read their
// variables under the group name, e.g. UTXOKIT_CACHE_PROVIDER.
type Config struct {
	// NetworkName namespaces cache entries and tags telemetry.
	NetworkName string `envconfig:"NETWORK_NAME" default:"mainnet" validate:"required"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// BridgeEndpoint is the JSON-RPC URL of the native ledger sidecar.
	BridgeEndpoint string `envconfig:"BRIDGE_ENDPOINT" default:"http://127.0.0.1:8545" validate:"required,url"`

	StatusPollAttempts uint          `envconfig:"STATUS_POLL_ATTEMPTS" default:"20" validate:"min=1"`
	StatusPollDelay    time.Duration `envconfig:"STATUS_POLL_DELAY" default:"3s" validate:"gt=0"`
	Concurrency        int           `envconfig:"CONCURRENCY" default:"8" validate:"min=1"`

	Network   Network
	HTTP      HTTP
	Cache     Cache
	Telemetry Telemetry
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not load configuration: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
