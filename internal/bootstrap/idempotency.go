package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/kabachok/lootcase/internal/config"
	"github.com/kabachok/lootcase/internal/handler"
	"github.com/kabachok/lootcase/internal/idempotency"
	"github.com/kabachok/lootcase/internal/logger"
)

// Idempotency is the Redis-backed replay store. Store is nil when REDIS_ADDR
// is unset, which disables Idempotency-Key handling.
type Idempotency struct {
	Store  idempotency.Store
	client *redis.Client
}

// InitializeIdempotency connects to Redis when configured. An unreachable
// server is not fatal: the middleware fails open and /readyz reports it.
func InitializeIdempotency(ctx context.Context, cfg *config.Config) *Idempotency {
	if cfg.RedisAddr == "" {
		return &Idempotency{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, RedisStartupPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn(LogMsgRedisUnreachable, "addr", cfg.RedisAddr, "error", err)
	} else {
		logger.Info(LogMsgRedisConnected, "addr", cfg.RedisAddr)
	}

	return &Idempotency{
		Store:  idempotency.NewRedisStore(client),
		client: client,
	}
}

// ReadinessChecks returns the Redis probe when Redis is configured
func (i *Idempotency) ReadinessChecks() []handler.HealthCheck {
	if i.client == nil {
		return nil
	}
	return []handler.HealthCheck{{
		Name: ReadinessNameRedis,
		Pinger: handler.PingFunc(func(ctx context.Context) error {
			return i.client.Ping(ctx).Err()
		}),
	}}
}

// Close closes the Redis client, if any
func (i *Idempotency) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		logger.Warn(LogMsgRedisCloseFailed, "error", err)
	}
}
