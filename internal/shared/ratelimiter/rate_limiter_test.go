package ratelimiter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindow_Allow(t *testing.T) {
	ctx := context.Background()
	window := time.Minute
	key := "login:a@x.com:1.2.3.4"

	t.Run("first attempt starts the window and is allowed", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		limiter := NewFixedWindow(rdb, "login", 5, window)

		mock.ExpectTxPipeline()
		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpireNX(key, window).SetVal(true)
		mock.ExpectTxPipelineExec()

		ok, err := limiter.Allow(ctx, "a@x.com:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("attempt within the limit is allowed", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		limiter := NewFixedWindow(rdb, "login", 5, window)

		mock.ExpectTxPipeline()
		mock.ExpectIncr(key).SetVal(5)
		mock.ExpectExpireNX(key, window).SetVal(false)
		mock.ExpectTxPipelineExec()

		ok, err := limiter.Allow(ctx, "a@x.com:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("attempt over the limit is denied", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		limiter := NewFixedWindow(rdb, "login", 5, window)

		mock.ExpectTxPipeline()
		mock.ExpectIncr(key).SetVal(6)
		mock.ExpectExpireNX(key, window).SetVal(false)
		mock.ExpectTxPipelineExec()

		ok, err := limiter.Allow(ctx, "a@x.com:1.2.3.4")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	// A counter that somehow lost its TTL must get the expiry re-armed instead
	// of throttling the key forever.
	t.Run("expiry is re-armed for a counter without a TTL", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		limiter := NewFixedWindow(rdb, "login", 5, window)

		mock.ExpectTxPipeline()
		mock.ExpectIncr(key).SetVal(7)
		mock.ExpectExpireNX(key, window).SetVal(true)
		mock.ExpectTxPipelineExec()

		ok, err := limiter.Allow(ctx, "a@x.com:1.2.3.4")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet(), "every attempt must offer the key an expiry")
	})

	t.Run("backend error is surfaced to the caller", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		limiter := NewFixedWindow(rdb, "login", 5, window)

		mock.ExpectTxPipeline()
		mock.ExpectIncr(key).SetErr(errors.New("connection refused"))

		_, err := limiter.Allow(ctx, "a@x.com:1.2.3.4")
		assert.Error(t, err)
	})
}
