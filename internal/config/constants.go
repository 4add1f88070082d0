package config

import "time"

// Environment variable names
const (
	EnvConfigFile        = "CONFIG_FILE"
	EnvPort              = "PORT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogDir            = "LOG_DIR"
	EnvVersion           = "VERSION"
	EnvRedisURL          = "REDIS_URL"
	EnvRedisPassword     = "REDIS_PASSWORD"
	EnvRedisDB           = "REDIS_DB"
	EnvRedisTLS          = "REDIS_TLS"
	EnvRateLimitRPS      = "RATE_LIMIT_RPS"
	EnvRateLimitBurst    = "RATE_LIMIT_BURST"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	EnvSnapshotCacheSize = "SNAPSHOT_CACHE_SIZE"
	EnvSnapshotCacheTTL  = "SNAPSHOT_CACHE_TTL"
	EnvAllowedOrigins    = "ALLOWED_ORIGINS"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultEnvironment       = "dev"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultVersion           = "dev"
	DefaultRedisURL          = "redis://localhost:6379/0"
	DefaultRateLimitRPS      = 100.0
	DefaultRateLimitBurst    = 200
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultSnapshotCacheSize = 256
	DefaultSnapshotCacheTTL  = 2 * time.Second
)

// SchemaName labels the embedded config file schema in errors.
const SchemaName = "config.schema.json"

// Environments
const (
	EnvironmentProduction = "prod"
)

// Error messages
const (
	ErrMsgReadConfigFile   = "failed to read config file %s: %w"
	ErrMsgParseConfigFile  = "failed to parse config file %s: %w"
	ErrMsgInvalidConfig    = "invalid configuration: %w"
	ErrMsgConfigFileSchema = "config file %s does not match schema: %w"
)
