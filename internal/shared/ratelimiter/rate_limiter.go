// Package ratelimiter limits how often an operation may run for a given key.
package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindow counts attempts per key in Redis over a fixed interval.
// It is shared across instances, so throttling survives restarts and scales out.
type FixedWindow struct {
	rdb    *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewFixedWindow creates a limiter allowing limit attempts per window under the
// given key prefix.
func NewFixedWindow(rdb *redis.Client, prefix string, limit int64, window time.Duration) *FixedWindow {
	return &FixedWindow{
		rdb:    rdb,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow records one attempt for key and reports whether it is within the limit.
// The increment and the expiry run in one MULTI/EXEC block, so a counter can
// never be left behind without a TTL. ExpireNX only arms the first attempt's
// expiry; the window never slides.
func (l *FixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	var count *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, l.window)
		return nil
	})
	if err != nil {
		return false, err
	}

	return count.Val() <= l.limit, nil
}
