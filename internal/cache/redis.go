package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
)

// ClientOptions configures the shared Redis connection pool.
type ClientOptions struct {
	URL      string
	Password string
	DB       int
	TLS      bool
}

// NewClient builds the single long-lived client shared by every component and
// checks that the server answers.
func NewClient(ctx context.Context, opts ClientOptions) (*redis.Client, error) {
	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseRedisURL, err)
	}
	if opts.Password != "" {
		redisOpts.Password = opts.Password
	}
	if opts.DB != 0 {
		redisOpts.DB = opts.DB
	}
	if opts.TLS && redisOpts.TLSConfig == nil {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgPingRedis, err)
	}
	return client, nil
}

// RedisStore implements Store, Subscriber and Pinger on top of go-redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client. The caller owns the client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return newError(OpSet, key, domain.ErrSerialization, err)
	}
	return classify(OpSet, key, s.client.Set(ctx, key, data, ttl).Err())
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return classify(OpGet, key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return newError(OpGet, key, domain.ErrDeserialization, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return classify(OpDelete, key, s.client.Del(ctx, key).Err())
}

func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, classify(OpExists, key, err)
	}
	return n > 0, nil
}

func (s *RedisStore) ZAdd(ctx context.Context, key string, score float64, member string) error {
	return classify(OpZAdd, key, s.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err())
}

// ZRevRangeWithScores returns members by descending score. Members with equal
// scores come back in descending lexicographic order of the member string.
func (s *RedisStore) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]ScoredMember, error) {
	zs, err := s.client.ZRevRangeWithScores(ctx, key, start, stop).Result()
	if err != nil {
		return nil, classify(OpZRevRange, key, err)
	}
	out := make([]ScoredMember, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			member = fmt.Sprint(z.Member)
		}
		out = append(out, ScoredMember{Member: member, Score: z.Score})
	}
	return out, nil
}

func (s *RedisStore) ZRevRank(ctx context.Context, key, member string) (int64, bool, error) {
	rank, err := s.client.ZRevRank(ctx, key, member).Result()
	if err != nil {
		if err = classify(OpZRevRank, key, err); IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return rank, true, nil
}

func (s *RedisStore) ZScore(ctx context.Context, key, member string) (float64, bool, error) {
	score, err := s.client.ZScore(ctx, key, member).Result()
	if err != nil {
		if err = classify(OpZScore, key, err); IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return score, true, nil
}

func (s *RedisStore) ZCard(ctx context.Context, key string) (int64, error) {
	n, err := s.client.ZCard(ctx, key).Result()
	if err != nil {
		return 0, classify(OpZCard, key, err)
	}
	return n, nil
}

// Publish sends strings and byte slices as-is and JSON-encodes anything else.
func (s *RedisStore) Publish(ctx context.Context, channel string, message any) error {
	var payload any
	switch m := message.(type) {
	case string, []byte:
		payload = m
	default:
		data, err := json.Marshal(m)
		if err != nil {
			return newError(OpPublish, channel, domain.ErrSerialization, err)
		}
		payload = data
	}
	return classify(OpPublish, channel, s.client.Publish(ctx, channel, payload).Err())
}

func (s *RedisStore) IncrementFields(ctx context.Context, key string, delta FieldDelta, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for field, n := range delta.Ints {
			pipe.HIncrBy(ctx, key, field, n)
		}
		for field, f := range delta.Floats {
			pipe.HIncrByFloat(ctx, key, field, f)
		}
		if len(delta.Set) > 0 {
			values := make([]any, 0, len(delta.Set)*2)
			for field, v := range delta.Set {
				values = append(values, field, v)
			}
			pipe.HSet(ctx, key, values...)
		}
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		return nil
	})
	return classify(OpIncrementFields, key, err)
}

// GetFields returns every field of a hash. An absent hash is a miss.
func (s *RedisStore) GetFields(ctx context.Context, key string) (map[string]string, error) {
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, classify(OpGetFields, key, err)
	}
	if len(fields) == 0 {
		return nil, newError(OpGetFields, key, domain.ErrNotFound, nil)
	}
	return fields, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return classify(OpPing, "", s.client.Ping(ctx).Err())
}

// PSubscribe subscribes to a channel pattern and waits for the server to
// confirm before returning, so publishes after this call are observed.
func (s *RedisStore) PSubscribe(ctx context.Context, pattern string) (*Subscription, error) {
	ps := s.client.PSubscribe(ctx, pattern)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, classify(OpPSubscribe, pattern, err)
	}
	slog.Debug(LogMsgSubscriptionStarted, "pattern", pattern)
	return newSubscription(pattern, ps), nil
}
