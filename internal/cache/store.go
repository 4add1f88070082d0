package cache

import (
	"context"
	"time"
)

// ScoredMember is one element of a ranking set read.
type ScoredMember struct {
	Member string
	Score  float64
}

// FieldDelta describes an atomic update to a hash: integer and float
// increments plus plain field assignments.
type FieldDelta struct {
	Ints   map[string]int64
	Floats map[string]float64
	Set    map[string]string
}

// Store is the key-value port every component talks to. Writes are visible to
// the next read immediately; nothing is buffered locally. A ttl of 0 means the
// key never expires.
type Store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Get decodes the stored value into dest.
	Get(ctx context.Context, key string, dest any) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// ZAdd replaces the member's score; it never accumulates.
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]ScoredMember, error)
	ZRevRank(ctx context.Context, key, member string) (rank int64, found bool, err error)
	ZScore(ctx context.Context, key, member string) (score float64, found bool, err error)
	ZCard(ctx context.Context, key string) (int64, error)

	// Publish is fire-and-forget: no acknowledgement, nothing kept for
	// subscribers that are not listening at publish time.
	Publish(ctx context.Context, channel string, message any) error

	// IncrementFields applies delta and refreshes the expiry in one transaction.
	IncrementFields(ctx context.Context, key string, delta FieldDelta, ttl time.Duration) error
	GetFields(ctx context.Context, key string) (map[string]string, error)
}

// Subscriber opens pattern subscriptions.
type Subscriber interface {
	PSubscribe(ctx context.Context, pattern string) (*Subscription, error)
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
