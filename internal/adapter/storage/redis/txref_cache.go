package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TxRefCache implements ports.TxRefCache using Redis. It is the fast path
// for duplicate detection on external transaction references; the unique
// index on ledger_entries remains the source of truth.
type TxRefCache struct {
	client *goredis.Client
	prefix string
}

// NewTxRefCache creates a new Redis-backed transaction reference cache.
func NewTxRefCache(client *goredis.Client) *TxRefCache {
	return &TxRefCache{
		client: client,
		prefix: "txref:",
	}
}

// Seen reports whether the reference was recorded recently.
func (c *TxRefCache) Seen(ctx context.Context, transactionRef string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+transactionRef).Result()
	if err != nil {
		return false, fmt.Errorf("redis txref exists: %w", err)
	}
	return n > 0, nil
}

// Remember marks the reference as recorded with a TTL.
func (c *TxRefCache) Remember(ctx context.Context, transactionRef string, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+transactionRef, "1", ttl).Err()
	if err != nil {
		return fmt.Errorf("redis txref set: %w", err)
	}
	return nil
}
