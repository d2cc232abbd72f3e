package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL   = 30 * time.Second
	defaultRetryStep = 50 * time.Millisecond
)

// RedisLocker serializes work per order id across processes using a
// Redis-held lock. Waiters poll with a linear backoff until the TTL or
// ctx expires.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
	retry  time.Duration
}

// NewRedisLocker creates a new RedisLocker
func NewRedisLocker(rdb redis.UniversalClient) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(rdb),
		ttl:    defaultLockTTL,
		retry:  defaultRetryStep,
	}
}

// Lock obtains the order's lock, retrying until ctx is done or the TTL
// window is exhausted.
func (l *RedisLocker) Lock(ctx context.Context, orderID int64) (func(), error) {
	key := fmt.Sprintf("procurement:order-lock:%d", orderID)

	held, err := l.client.Obtain(ctx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(l.retry), int(l.ttl/l.retry)),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("order %d is locked by another receipt: %w", orderID, err)
	}
	if err != nil {
		return nil, fmt.Errorf("obtain order lock: %w", err)
	}

	release := func() {
		// Release on a fresh context so a cancelled request still
		// frees the lock.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = held.Release(releaseCtx)
	}
	return release, nil
}
