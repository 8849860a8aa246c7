package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental_billing/internal/infrastructure/config"
	"rental_billing/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

func TestNoopLocker(t *testing.T) {
	release, err := NoopLocker{}.Obtain(context.Background(), "k", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := release(context.Background()); err != nil {
		t.Fatalf("unexpected release error: %v", err)
	}
}

func TestConnect_WithoutRedis(t *testing.T) {
	locker, closeFn := Connect(context.Background(), config.RedisConfig{})
	if _, ok := locker.(NoopLocker); !ok {
		t.Fatalf("expected NoopLocker, got %T", locker)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}

func TestRedisLocker_UnreachableRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedisLocker(rdb).Obtain(ctx, "rental-payment:p-1:proof", time.Second)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if errors.Is(err, interfaces.ErrLockNotObtained) {
		t.Fatalf("transport errors must not look like contention: %v", err)
	}
}
