package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/utxokit/internal/cachestore"

	"github.com/redis/go-redis/v9"
)

// key returns the Redis key for a cache path.
//
// Format: "<namespace>:cache:<path>"
func (c *client) key(path string) string {
	return fmt.Sprintf("%s:cache:%s", c.namespace, path)
}

// Read implements cachestore.Provider.
//
// A missing key is reported as cachestore.ErrNotFound.
//
// Parameters:
//   - ctx: context for timeout and cancellation.
//   - path: the cache path, as built by cachestore.Store.Path.
//
// Returns:
//   - The stored document, or an error if it is missing or Redis fails.
func (c *client) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := c.conn.Get(ctx, c.key(path)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = cachestore.ErrNotFound
		}

		return nil, err
	}

	return data, nil
}

// Write implements cachestore.Provider by SETting the document, with the
// client TTL as expiration.
func (c *client) Write(ctx context.Context, path string, data []byte) error {
	return c.conn.Set(ctx, c.key(path), data, c.ttl).Err()
}

// Compile-time assertion to ensure client implements cachestore.Provider.
var _ cachestore.Provider = new(client)
