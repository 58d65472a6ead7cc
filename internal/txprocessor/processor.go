// Package txprocessor decodes ledger transactions into typed operations and
// annotates each operation with the addresses it moves value between.
package txprocessor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/gabapcia/utxokit/internal/ledger"
	"github.com/gabapcia/utxokit/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyTx is returned when a transaction body decodes to nothing.
var ErrEmptyTx = errors.New("parsed tx is empty")

// TxInfo is a transaction as returned by the block explorer.
type TxInfo struct {
	Hash   string
	Height uint64

	// Tx is the base64 encoded JSON transaction body.
	Tx   string
	Code uint32
}

// ProcessedOperation is an operation with its participants resolved.
type ProcessedOperation struct {
	Kind Kind
	From []string
	To   []string

	// AssetRules is set for asset definitions, merged over the default rules.
	AssetRules *ledger.AssetRules

	Original Operation
}

// ProcessedTxInfo is a decoded transaction.
type ProcessedTxInfo struct {
	Code       uint32
	Hash       string
	Height     uint64
	Time       time.Time
	Operations []ProcessedOperation
}

// Network resolves block times.
type Network interface {
	BlockTime(ctx context.Context, height uint64) (time.Time, error)
}

// Service decodes transactions.
type Service interface {
	// ProcessTxInfoItem decodes a single transaction.
	ProcessTxInfoItem(ctx context.Context, item TxInfo) (ProcessedTxInfo, error)

	// ProcessTxInfoList decodes items concurrently and keeps their order.
	// Transactions that cannot be decoded are logged and left out.
	ProcessTxInfoList(ctx context.Context, items []TxInfo) ([]ProcessedTxInfo, error)
}

type config struct {
	concurrency int
}

// Option configures the service.
type Option func(*config)

// WithConcurrency bounds how many transactions are decoded at once.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

type service struct {
	cfg     config
	network Network
}

var _ Service = (*service)(nil)

// New creates the transaction processor.
func New(network Network, opts ...Option) *service {
	cfg := config{
		concurrency: runtime.GOMAXPROCS(0) * 2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{cfg: cfg, network: network}
}

// parseTx decodes the base64 JSON body of a transaction.
func parseTx(encoded string) (*ParsedTx, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("cant parse the tx info from the tx item. Details: %q", err.Error())
	}

	var parsed *ParsedTx
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("cant parse the tx info from the tx item. Details: %q", err.Error())
	}

	if parsed == nil {
		return nil, ErrEmptyTx
	}

	return parsed, nil
}

// ProcessTxInfoItem implements Service.
func (s *service) ProcessTxInfoItem(ctx context.Context, item TxInfo) (ProcessedTxInfo, error) {
	parsed, err := parseTx(item.Tx)
	if err != nil {
		return ProcessedTxInfo{}, err
	}

	blockTime, err := s.network.BlockTime(ctx, item.Height)
	if err != nil {
		return ProcessedTxInfo{}, fmt.Errorf("could not get block time of height %d: %w", item.Height, err)
	}

	operations := parsed.Body.Operations
	processed := make([]ProcessedOperation, len(operations))

	var g errgroup.Group
	for i, op := range operations {
		g.Go(func() error {
			p, err := processOperation(op)
			if err != nil {
				return fmt.Errorf("could not process operation %d of tx %s: %w", i, item.Hash, err)
			}

			processed[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ProcessedTxInfo{}, err
	}

	return ProcessedTxInfo{
		Code:       item.Code,
		Hash:       item.Hash,
		Height:     item.Height,
		Time:       blockTime,
		Operations: processed,
	}, nil
}

// ProcessTxInfoList implements Service.
func (s *service) ProcessTxInfoList(ctx context.Context, items []TxInfo) ([]ProcessedTxInfo, error) {
	results := make([]*ProcessedTxInfo, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.concurrency)
	for i, item := range items {
		g.Go(func() error {
			processed, err := s.ProcessTxInfoItem(gctx, item)
			if err != nil {
				logger.Warn(gctx, "skipping transaction", "hash", item.Hash, "error", err)
				return nil
			}

			results[i] = &processed
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txs := make([]ProcessedTxInfo, 0, len(items))
	for _, r := range results {
		if r != nil {
			txs = append(txs, *r)
		}
	}

	return slices.Clip(txs), nil
}
