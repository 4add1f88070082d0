package cache_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahillather002/challenge-fun-app/internal/cache"
	"github.com/Sahillather002/challenge-fun-app/internal/cache/cachetest"
	"github.com/Sahillather002/challenge-fun-app/internal/domain"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRedisStore_SetGet(t *testing.T) {
	store, mr := cachetest.New(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", sample{Name: "a", Count: 2}, time.Hour))

	var got sample
	require.NoError(t, store.Get(ctx, "k", &got))
	assert.Equal(t, sample{Name: "a", Count: 2}, got)
	assert.Equal(t, time.Hour, mr.TTL("k"))
}

func TestRedisStore_SetOverwritesAndResetsTTL(t *testing.T) {
	store, mr := cachetest.New(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", sample{Name: "first"}, time.Hour))
	mr.FastForward(30 * time.Minute)
	require.NoError(t, store.Set(ctx, "k", sample{Name: "second"}, time.Hour))

	var got sample
	require.NoError(t, store.Get(ctx, "k", &got))
	assert.Equal(t, "second", got.Name)
	assert.Equal(t, time.Hour, mr.TTL("k"))
}

func TestRedisStore_GetMissAndExpiry(t *testing.T) {
	store, mr := cachetest.New(t)
	ctx := context.Background()

	var got sample
	err := store.Get(ctx, "absent", &got)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, cache.IsNotFound(err))

	require.NoError(t, store.Set(ctx, "short", sample{Name: "x"}, time.Minute))
	mr.FastForward(2 * time.Minute)
	assert.ErrorIs(t, store.Get(ctx, "short", &got), domain.ErrNotFound)
}

func TestRedisStore_GetDeserializationError(t *testing.T) {
	store, mr := cachetest.New(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("garbage", "not-json"))
	require.NoError(t, mr.Set("wrong-shape", `{"name": 12}`))

	var got sample
	err := store.Get(ctx, "garbage", &got)
	assert.ErrorIs(t, err, domain.ErrDeserialization)

	err = store.Get(ctx, "wrong-shape", &got)
	assert.ErrorIs(t, err, domain.ErrDeserialization)

	var cacheErr *cache.Error
	require.True(t, errors.As(err, &cacheErr))
	assert.Equal(t, cache.OpGet, cacheErr.Op)
	assert.Equal(t, "wrong-shape", cacheErr.Key)
}

func TestRedisStore_SetSerializationError(t *testing.T) {
	store, _ := cachetest.New(t)

	err := store.Set(context.Background(), "k", make(chan int), time.Hour)
	assert.ErrorIs(t, err, domain.ErrSerialization)
}

func TestRedisStore_DeleteExists(t *testing.T) {
	store, _ := cachetest.New(t)
	ctx := context.Background()

	exists, err := store.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Set(ctx, "k", "v", 0))
	exists, err = store.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "k"))
	exists, err = store.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestRedisStore_SortedSet(t *testing.T) {
	store, _ := cachetest.New(t)
	ctx := context.Background()
	key := cache.LeaderboardKey("c1")

	require.NoError(t, store.ZAdd(ctx, key, 100, "alice"))
	require.NoError(t, store.ZAdd(ctx, key, 300, "bob"))
	require.NoError(t, store.ZAdd(ctx, key, 200, "carol"))

	// replace, not increment
	require.NoError(t, store.ZAdd(ctx, key, 50, "alice"))

	members, err := store.ZRevRangeWithScores(ctx, key, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []cache.ScoredMember{
		{Member: "bob", Score: 300},
		{Member: "carol", Score: 200},
		{Member: "alice", Score: 50},
	}, members)

	rank, found, err := store.ZRevRank(ctx, key, "carol")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(1), rank)

	_, found, err = store.ZRevRank(ctx, key, "nobody")
	require.NoError(t, err)
	assert.False(t, found)

	score, found, err := store.ZScore(ctx, key, "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, float64(50), score)

	_, found, err = store.ZScore(ctx, key, "nobody")
	require.NoError(t, err)
	assert.False(t, found)

	n, err := store.ZCard(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = store.ZCard(ctx, cache.LeaderboardKey("empty"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisStore_ZRevRangeTieBreak(t *testing.T) {
	store, _ := cachetest.New(t)
	ctx := context.Background()
	key := cache.LeaderboardKey("ties")

	for _, m := range []string{"b", "d", "a", "c"} {
		require.NoError(t, store.ZAdd(ctx, key, 10, m))
	}

	members, err := store.ZRevRangeWithScores(ctx, key, 0, -1)
	require.NoError(t, err)

	var order []string
	for _, m := range members {
		order = append(order, m.Member)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, order)
}

func TestRedisStore_IncrementFields(t *testing.T) {
	store, mr := cachetest.New(t)
	ctx := context.Background()
	key := cache.FitnessStatsKey("u1", "c1")

	delta := cache.FieldDelta{
		Ints:   map[string]int64{"steps": 1000},
		Floats: map[string]float64{"distance": 1.5},
		Set:    map[string]string{"source": "google_fit"},
	}
	require.NoError(t, store.IncrementFields(ctx, key, delta, time.Hour))
	require.NoError(t, store.IncrementFields(ctx, key, delta, time.Hour))

	fields, err := store.GetFields(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "2000", fields["steps"])
	distance, err := strconv.ParseFloat(fields["distance"], 64)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, distance, 1e-9)
	assert.Equal(t, "google_fit", fields["source"])
	assert.Equal(t, time.Hour, mr.TTL(key))

	_, err = store.GetFields(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisStore_PublishSubscribe(t *testing.T) {
	store, _ := cachetest.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub, err := store.PSubscribe(ctx, cache.LeaderboardChannelPattern)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, store.Publish(ctx, cache.LeaderboardChannel("c1"), map[string]string{"hello": "world"}))
	require.NoError(t, store.Publish(ctx, cache.LeaderboardChannel("c2"), "raw"))

	select {
	case msg := <-sub.Messages():
		assert.Equal(t, "leaderboard:c1", msg.Channel)
		assert.JSONEq(t, `{"hello":"world"}`, string(msg.Payload))
	case <-ctx.Done():
		t.Fatal("timed out waiting for first message")
	}

	select {
	case msg := <-sub.Messages():
		assert.Equal(t, "leaderboard:c2", msg.Channel)
		assert.Equal(t, "raw", string(msg.Payload))
	case <-ctx.Done():
		t.Fatal("timed out waiting for second message")
	}
}

func TestRedisStore_PublishWithoutSubscribers(t *testing.T) {
	store, _ := cachetest.New(t)
	assert.NoError(t, store.Publish(context.Background(), cache.LeaderboardChannel("c1"), "nobody listening"))
}

func TestRedisStore_StoreUnavailable(t *testing.T) {
	store, mr := cachetest.New(t)
	ctx := context.Background()
	mr.Close()

	err := store.Set(ctx, "k", "v", time.Minute)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	var got string
	err = store.Get(ctx, "k", &got)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.False(t, cache.IsNotFound(err))

	_, err = store.ZCard(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	assert.ErrorIs(t, store.Ping(ctx), domain.ErrStoreUnavailable)
}

func TestNewClient(t *testing.T) {
	_, mr := cachetest.New(t)

	client, err := cache.NewClient(context.Background(), cache.ClientOptions{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	defer client.Close()
	assert.IsType(t, &redis.Client{}, client)

	_, err = cache.NewClient(context.Background(), cache.ClientOptions{URL: "::not a url"})
	assert.Error(t, err)
}
