package di

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/helper"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/prometheus"
	"hotel/infras/redis"
	"hotel/shared/cache"
	"hotel/shared/event"
	"time"

	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// provideDatabase applies pending migrations when enabled, then opens the
// read and write pools.
func provideDatabase(cfg *config.Config) (*postgres.Connection, func(), error) {
	if err := helper.AutoMigrate(cfg); err != nil {
		return nil, nil, fmt.Errorf("auto migrate: %w", err)
	}

	db, err := postgres.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return db, func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connections")
		}
	}, nil
}

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	o := otel.New(cfg)

	return o, func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := o.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}
}

// provideCache connects to redis only when the rate limiter needs it.
func provideCache(cfg *config.Config, o otel.Otel) (cache.RedisCache, func(), error) {
	if !cfg.App.RateLimiter.Enable {
		return nil, func() {}, nil
	}

	client, err := redis.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cache.NewRedisCache(client, o), func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis client")
		}
	}, nil
}

func provideEmitter(publisher kafka.Publisher, metrics *prometheus.Metrics) (event.Emitter, func()) {
	emitter := event.NewEmitter(publisher, metrics)

	return emitter, func() {
		if err := emitter.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close event publisher")
		}
	}
}
