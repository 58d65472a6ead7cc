// Package utxo fetches, decrypts and caches a wallet's unspent outputs, selects
// outputs to cover a spend and turns the selection into transfer inputs.
package utxo

import (
	"context"
	"encoding/json"
	"math/big"
	"runtime"

	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/ledger"
	"github.com/gabapcia/utxokit/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/metric"
)

// Network fetches raw outputs and their owner memos.
type Network interface {
	// GetUtxo returns the asset record stored under sid.
	GetUtxo(ctx context.Context, sid uint64) (json.RawMessage, error)

	// GetOwnerMemo returns the owner memo of sid, or JSON null when it has none.
	GetOwnerMemo(ctx context.Context, sid uint64) (json.RawMessage, error)
}

// Cache persists decrypted outputs between calls.
type Cache interface {
	Path(prefix, key string) string
	Read(ctx context.Context, path string, out any) (bool, error)
	Write(ctx context.Context, path string, v any) error
	Lock(path string) (unlock func())
}

// Service exposes the UTXO operations that need the network, the ledger or the
// cache. Output selection needs none of them and is the GetSendUtxo function.
type Service interface {
	// DecryptUtxoItem opens the record utxoData of sid with the wallet key.
	// memoData is the raw owner memo and may be nil.
	DecryptUtxoItem(ctx context.Context, sid uint64, wallet keypair.WalletKeyPair, utxoData, memoData json.RawMessage) (DecryptedItem, error)

	// GetUtxoItem returns cached unchanged when it is not nil. Otherwise it
	// fetches the output and its memo and decrypts them.
	GetUtxoItem(ctx context.Context, sid uint64, wallet keypair.WalletKeyPair, cached *DecryptedItem) (DecryptedItem, error)

	// AddUtxo resolves sids through the wallet cache, skipping the sids that
	// fail, and writes the resolved items back to the cache.
	//
	// Parameters:
	//   - ctx: provides cancellation and timeout context.
	//   - wallet: decrypts the outputs and names the cache entry.
	//   - sids: the output ids to resolve, in the order they are returned.
	//
	// Returns:
	//   - items: the resolved outputs. Sids that fail are logged and left out.
	//   - err: a failure to read the cache or a cancelled ctx. A failed cache
	//     write is logged and does not fail the call.
	AddUtxo(ctx context.Context, wallet keypair.WalletKeyPair, sids []uint64) ([]DecryptedItem, error)

	// AddUtxoInputs builds transfer inputs for a selection. Any failure fails
	// the whole call.
	AddUtxoInputs(ctx context.Context, selection []OutputItem) (InputsInfo, error)
}

type config struct {
	concurrency int
	namespace   string
}

// Option configures the service.
type Option func(*config)

// WithConcurrency bounds how many sids AddUtxo resolves at once.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithNamespace keeps the cache documents of different networks apart.
func WithNamespace(network string) Option {
	return func(c *config) {
		c.namespace = network
	}
}

type service struct {
	cfg     config
	network Network
	ledger  ledger.RecordOpener
	cache   Cache

	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter
}

var _ Service = (*service)(nil)

// New creates the UTXO service.
func New(network Network, l ledger.RecordOpener, cache Cache, opts ...Option) *service {
	cfg := config{
		concurrency: runtime.GOMAXPROCS(0) * 2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:         cfg,
		network:     network,
		ledger:      l,
		cache:       cache,
		cacheHits:   telemetry.Int64Counter("utxo.cache.hits", "UTXOs served from the wallet cache"),
		cacheMisses: telemetry.Int64Counter("utxo.cache.misses", "UTXOs fetched from the network and decrypted"),
	}
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

func cloneRaw[T ~[]byte](v T) T {
	if v == nil {
		return nil
	}
	return append(T(nil), v...)
}
