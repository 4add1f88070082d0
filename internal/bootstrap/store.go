package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Sahillather002/challenge-fun-app/internal/cache"
	"github.com/Sahillather002/challenge-fun-app/internal/config"
)

// InitializeStore opens the shared Redis client and wraps it in the cache
// port. The client is returned so shutdown can close it last.
func InitializeStore(ctx context.Context, cfg config.RedisConfig) (*redis.Client, *cache.RedisStore, error) {
	client, err := cache.NewClient(ctx, cache.ClientOptions{
		URL:      cfg.URL,
		Password: cfg.Password,
		DB:       cfg.DB,
		TLS:      cfg.TLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgStoreConnection, err)
	}

	slog.Info(LogMsgStoreConnected, "db", cfg.DB, "tls", cfg.TLS)
	return client, cache.NewRedisStore(client), nil
}
