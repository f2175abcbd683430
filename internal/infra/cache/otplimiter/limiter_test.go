package otplimiter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int, window time.Duration) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb, limit, window), mr
}

func TestAllow_BlocksAfterLimitWithinWindow(t *testing.T) {
	l, _ := newLimiter(t, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "asha@vdartinc.com")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "ASHA@vdartinc.com")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "ravi@vdartinc.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAllow_WindowExpires(t *testing.T) {
	l, mr := newLimiter(t, 1, time.Minute)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "asha@vdartinc.com")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "asha@vdartinc.com")
	assert.False(t, ok)

	mr.FastForward(61 * time.Second)

	ok, err := l.Allow(ctx, "asha@vdartinc.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAllow_DisabledWithoutClient(t *testing.T) {
	l := New(nil, 1, time.Minute)
	for i := 0; i < 5; i++ {
		ok, err := l.Allow(context.Background(), "asha@vdartinc.com")
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestReset(t *testing.T) {
	l, _ := newLimiter(t, 1, time.Minute)
	ctx := context.Background()

	_, _ = l.Allow(ctx, "asha@vdartinc.com")
	require.NoError(t, l.Reset(ctx, "asha@vdartinc.com"))

	ok, err := l.Allow(ctx, "asha@vdartinc.com")
	require.NoError(t, err)
	assert.True(t, ok)
}
