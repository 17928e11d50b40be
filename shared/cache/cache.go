package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

type RedisCache interface {
	Increment(ctx context.Context, key string, windowSeconds int) (count int64, ttl time.Duration, err error)
}

type redisCache struct {
	client redis.Cmdable
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Increment bumps the counter stored at key and returns it with the time left
// in its window. The window starts with the first increment and is not
// extended by later ones.
func (cache *redisCache) Increment(ctx context.Context, key string, windowSeconds int) (count int64, ttl time.Duration, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var (
		incr    *redis.IntCmd
		current *redis.DurationCmd
	)

	_, err = cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		current = pipe.TTL(ctx, key)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment counter")

		return 0, 0, fmt.Errorf("failed to increment cache counter: %w", err)
	}

	count, ttl = incr.Val(), current.Val()

	// A negative TTL means the key has no expiry yet.
	if ttl < 0 {
		ttl = time.Duration(windowSeconds) * time.Second

		if err = cache.client.Expire(ctx, key, ttl).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to set counter expiry")

			return 0, 0, fmt.Errorf("failed to set cache counter expiry: %w", err)
		}
	}

	log.Debug().Str("RedisCache", "Increment").Str("key", key).Int64("count", count).Msg("counter incremented")

	return count, ttl, nil
}
