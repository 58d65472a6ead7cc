// Package redis implements cachestore.Provider on Redis, letting several SDK
// processes share one UTXO cache.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// DefaultNamespace prefixes every key unless Options.Namespace is set.
const DefaultNamespace = "utxokit"

// Options configure the connection and how documents are stored.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int

	// TTL expires written documents. Zero keeps them forever.
	TTL time.Duration

	// Namespace keeps the keys of deployments sharing a server apart.
	Namespace string
}

// commands is the part of the Redis API the provider uses.
type commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Close() error
}

type client struct {
	conn      commands
	ttl       time.Duration
	namespace string
}

func (c *client) Close() error {
	return c.conn.Close()
}

func newClient(conn commands, opts Options) *client {
	namespace := opts.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &client{
		conn:      conn,
		ttl:       opts.TTL,
		namespace: namespace,
	}
}

// NewClient connects to Redis and verifies the connection with a PING.
func NewClient(ctx context.Context, opts Options) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return newClient(conn, opts), nil
}
