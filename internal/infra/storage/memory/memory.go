// Package memory implements cachestore.Provider on an in-process ttlcache.
package memory

import (
	"context"
	"time"

	"github.com/gabapcia/utxokit/internal/cachestore"

	"github.com/jellydator/ttlcache/v3"
)

type config struct {
	ttl time.Duration
}

// Option configures the memory provider.
type Option func(*config)

// WithTTL expires entries ttl after they were written. Zero keeps entries
// until the process exits.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.ttl = ttl
	}
}

// Provider keeps cache documents in memory.
type Provider struct {
	cache   *ttlcache.Cache[string, []byte]
	started bool
}

var _ cachestore.Provider = (*Provider)(nil)

// New creates an empty provider. When a TTL is set, a cleanup goroutine runs
// until Close is called.
func New(opts ...Option) *Provider {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Provider{
		cache: ttlcache.New[string, []byte](
			ttlcache.WithTTL[string, []byte](cfg.ttl),
			ttlcache.WithDisableTouchOnHit[string, []byte](),
		),
	}

	if cfg.ttl > 0 {
		p.started = true
		go p.cache.Start()
	}

	return p
}

// Read returns a copy of the document at path.
func (p *Provider) Read(_ context.Context, path string) ([]byte, error) {
	item := p.cache.Get(path)
	if item == nil {
		return nil, cachestore.ErrNotFound
	}

	return append([]byte(nil), item.Value()...), nil
}

// Write stores a copy of data at path.
func (p *Provider) Write(_ context.Context, path string, data []byte) error {
	p.cache.Set(path, append([]byte(nil), data...), ttlcache.DefaultTTL)
	return nil
}

// Close stops the cleanup goroutine, if any.
func (p *Provider) Close() error {
	if p.started {
		p.cache.Stop()
	}
	return nil
}
