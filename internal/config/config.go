package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Sahillather002/challenge-fun-app/internal/validation"
)

//go:embed schema.json
var fileSchema []byte

// Config holds the application configuration
type Config struct {
	Port            int                 `yaml:"port" validate:"min=1,max=65535"`
	Environment     string              `yaml:"environment" validate:"oneof=dev staging prod test"`
	LogLevel        string              `yaml:"log_level" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat       string              `yaml:"log_format" validate:"oneof=json text"`
	LogDir          string              `yaml:"log_dir"`
	Version         string              `yaml:"version"`
	Redis           RedisConfig         `yaml:"redis"`
	RateLimit       RateLimitConfig     `yaml:"rate_limit"`
	ShutdownTimeout time.Duration       `yaml:"shutdown_timeout" validate:"gt=0"`
	SnapshotCache   SnapshotCacheConfig `yaml:"snapshot_cache"`
	AllowedOrigins  []string            `yaml:"allowed_origins"`
}

// RedisConfig holds the connection settings for the shared cache.
type RedisConfig struct {
	URL      string `yaml:"url" validate:"required,url"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"min=0,max=15"`
	TLS      bool   `yaml:"tls"`
}

// RateLimitConfig bounds the request rate per client IP.
type RateLimitConfig struct {
	RPS            float64  `yaml:"rps" validate:"gt=0"`
	Burst          int      `yaml:"burst" validate:"min=1"`
	TrustedProxies []string `yaml:"trusted_proxies" validate:"dive,ip"`
}

// SnapshotCacheConfig sizes the realtime relay's leaderboard snapshot cache.
type SnapshotCacheConfig struct {
	Size int           `yaml:"size" validate:"min=1"`
	TTL  time.Duration `yaml:"ttl" validate:"gt=0"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:        DefaultPort,
		Environment: DefaultEnvironment,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		LogDir:      DefaultLogDir,
		Version:     DefaultVersion,
		Redis: RedisConfig{
			URL: DefaultRedisURL,
		},
		RateLimit: RateLimitConfig{
			RPS:   DefaultRateLimitRPS,
			Burst: DefaultRateLimitBurst,
		},
		ShutdownTimeout: DefaultShutdownTimeout,
		SnapshotCache: SnapshotCacheConfig{
			Size: DefaultSnapshotCacheSize,
			TTL:  DefaultSnapshotCacheTTL,
		},
	}
}

// Load builds the configuration. Precedence, lowest first: defaults, the YAML
// file named by CONFIG_FILE, then environment variables (a .env file in the
// working directory is loaded into the environment first).
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidConfig, err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadConfigFile, path, err)
	}

	schema, err := validation.NewSchemaValidator(SchemaName, fileSchema)
	if err != nil {
		return err
	}
	if err := schema.ValidateYAML(data); err != nil {
		if errors.Is(err, validation.ErrSchemaMismatch) {
			return fmt.Errorf(ErrMsgConfigFileSchema, path, err)
		}
		return fmt.Errorf(ErrMsgParseConfigFile, path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf(ErrMsgParseConfigFile, path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnvAsInt(EnvPort, cfg.Port)
	cfg.Environment = getEnv(EnvEnvironment, cfg.Environment)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(EnvLogFormat, cfg.LogFormat)
	cfg.LogDir = getEnv(EnvLogDir, cfg.LogDir)
	cfg.Version = getEnv(EnvVersion, cfg.Version)

	cfg.Redis.URL = getEnv(EnvRedisURL, cfg.Redis.URL)
	cfg.Redis.Password = getEnv(EnvRedisPassword, cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt(EnvRedisDB, cfg.Redis.DB)
	cfg.Redis.TLS = getEnvAsBool(EnvRedisTLS, cfg.Redis.TLS)

	cfg.RateLimit.RPS = getEnvAsFloat(EnvRateLimitRPS, cfg.RateLimit.RPS)
	cfg.RateLimit.Burst = getEnvAsInt(EnvRateLimitBurst, cfg.RateLimit.Burst)
	cfg.RateLimit.TrustedProxies = getEnvAsList(EnvTrustedProxies, cfg.RateLimit.TrustedProxies)

	cfg.ShutdownTimeout = getEnvAsDuration(EnvShutdownTimeout, cfg.ShutdownTimeout)
	cfg.SnapshotCache.Size = getEnvAsInt(EnvSnapshotCacheSize, cfg.SnapshotCache.Size)
	cfg.SnapshotCache.TTL = getEnvAsDuration(EnvSnapshotCacheTTL, cfg.SnapshotCache.TTL)
	cfg.AllowedOrigins = getEnvAsList(EnvAllowedOrigins, cfg.AllowedOrigins)
}

// IsProduction reports whether the app runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping empty items.
func getEnvAsList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
