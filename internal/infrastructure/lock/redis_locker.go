// Package lock provides the per-key locks used to serialize proof submissions.
package lock

import (
	"context"
	"errors"
	"time"

	"rental_billing/internal/infrastructure/config"
	"rental_billing/internal/infrastructure/logger"
	"rental_billing/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix     = "lock:"
	retryInterval = 100 * time.Millisecond
	retryAttempts = 20
)

// RedisLocker hands out redislock locks on a shared Redis.
type RedisLocker struct {
	client *redislock.Client
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisLocker(rdb redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: redislock.New(rdb)}
}

func (l *RedisLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	lk, err := l.client.Obtain(ctx, keyPrefix+key, ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(retryInterval), retryAttempts),
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, interfaces.ErrLockNotObtained
		}
		return nil, err
	}
	return func(ctx context.Context) error {
		if err := lk.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return err
		}
		return nil
	}, nil
}

// NoopLocker never blocks. Used when no Redis is configured; proof
// submissions then rely on the conditional writes of the record store.
type NoopLocker struct{}

var _ interfaces.ILocker = NoopLocker{}

func (NoopLocker) Obtain(context.Context, string, time.Duration) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

// Connect returns a RedisLocker when redis.addr is set and reachable,
// otherwise a NoopLocker.
func Connect(ctx context.Context, cfg config.RedisConfig) (interfaces.ILocker, func() error) {
	if cfg.Addr == "" {
		logger.L().Info("[lock][redis] redis not configured; using noop locker")
		return NoopLocker{}, func() error { return nil }
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.L().Warn("[lock][redis] ping failed; using noop locker", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = rdb.Close()
		return NoopLocker{}, func() error { return nil }
	}
	logger.L().Info("[lock][redis] connected", zap.String("addr", cfg.Addr))
	return NewRedisLocker(rdb), rdb.Close
}
