package cache_test

import (
	"context"
	"hotel/infras/otel/mocks"
	"hotel/shared/cache"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	tracer := mocks.NewOtel()
	redisCache := cache.NewRedisCache(client, tracer)

	count, ttl, err := redisCache.Increment(context.Background(), "limiter:192.0.2.1:curl", 60)

	require.Error(t, err)
	assert.Zero(t, count)
	assert.Zero(t, ttl)
	assert.Len(t, tracer.Traced, 1)
}
