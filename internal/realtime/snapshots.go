package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
)

// LeaderboardReader is the read side of the leaderboard engine.
type LeaderboardReader interface {
	GetLeaderboard(ctx context.Context, competitionID string, limit int) (*domain.Leaderboard, error)
}

// SnapshotCache keeps the leaderboard sent to newly connected clients so a burst
// of connections to one competition costs a single store read. Entries are
// dropped on every relayed score update and expire after a short TTL.
//
// Each competition has a generation that Invalidate bumps. A read that was in
// flight across an invalidation is returned to its caller but not cached.
type SnapshotCache struct {
	reader LeaderboardReader
	lru    *expirable.LRU[string, *domain.Leaderboard]

	mu          sync.Mutex
	generations map[string]uint64
}

// NewSnapshotCache creates a snapshot cache of the given size and TTL.
func NewSnapshotCache(reader LeaderboardReader, size int, ttl time.Duration) *SnapshotCache {
	if size <= 0 {
		size = DefaultSnapshotCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultSnapshotCacheTTL
	}
	return &SnapshotCache{
		reader:      reader,
		lru:         expirable.NewLRU[string, *domain.Leaderboard](size, nil, ttl),
		generations: make(map[string]uint64),
	}
}

// Get returns the cached snapshot or reads a fresh one.
func (c *SnapshotCache) Get(ctx context.Context, competitionID string) (*domain.Leaderboard, error) {
	if board, ok := c.lru.Get(competitionID); ok {
		return board, nil
	}

	c.mu.Lock()
	gen := c.generations[competitionID]
	c.mu.Unlock()

	board, err := c.reader.GetLeaderboard(ctx, competitionID, InitialSnapshotLimit)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.generations[competitionID] == gen {
		c.lru.Add(competitionID, board)
	}
	c.mu.Unlock()
	return board, nil
}

// Invalidate drops the cached snapshot for a competition and marks reads
// already in flight as stale.
func (c *SnapshotCache) Invalidate(competitionID string) {
	c.mu.Lock()
	c.generations[competitionID]++
	c.lru.Remove(competitionID)
	c.mu.Unlock()
}

// Len reports how many snapshots are cached.
func (c *SnapshotCache) Len() int {
	return c.lru.Len()
}
