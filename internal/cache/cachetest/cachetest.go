// Package cachetest wires a RedisStore to an in-memory miniredis server for tests.
package cachetest

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Sahillather002/challenge-fun-app/internal/cache"
)

// New starts a miniredis server bound to the test and returns a store over it.
// The server and client are closed when the test ends.
func New(t testing.TB) (*cache.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisStore(client), mr
}
