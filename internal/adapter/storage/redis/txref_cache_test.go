package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRefCache_SeenAndRemember(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewTxRefCache(client)
	ctx := context.Background()

	ref := "stripe_pi_3OqX8w2eZvKYlo2C"

	// Unknown ref before remember
	seen, err := cache.Seen(ctx, ref)
	assert.NoError(t, err)
	assert.False(t, seen)

	err = cache.Remember(ctx, ref, 24*time.Hour)
	require.NoError(t, err)

	seen, err = cache.Seen(ctx, ref)
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestTxRefCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewTxRefCache(client)
	ctx := context.Background()

	ref := "stripe_pi_expiring"

	err := cache.Remember(ctx, ref, 1*time.Second)
	require.NoError(t, err)

	// Fast-forward time in miniredis
	s.FastForward(2 * time.Second)

	seen, err := cache.Seen(ctx, ref)
	assert.NoError(t, err)
	assert.False(t, seen, "expired ref should not be seen")
}
