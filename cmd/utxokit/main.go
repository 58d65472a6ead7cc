package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/utxokit/internal/account"
	"github.com/gabapcia/utxokit/internal/asset"
	"github.com/gabapcia/utxokit/internal/cachestore"
	"github.com/gabapcia/utxokit/internal/config"
	"github.com/gabapcia/utxokit/internal/fee"
	"github.com/gabapcia/utxokit/internal/handlers/cli"
	"github.com/gabapcia/utxokit/internal/infra/ledger/bridge"
	"github.com/gabapcia/utxokit/internal/infra/ledgerapi"
	"github.com/gabapcia/utxokit/internal/infra/storage/file"
	"github.com/gabapcia/utxokit/internal/infra/storage/memory"
	"github.com/gabapcia/utxokit/internal/infra/storage/redis"
	"github.com/gabapcia/utxokit/internal/pkg/logger"
	"github.com/gabapcia/utxokit/internal/pkg/telemetry"
	"github.com/gabapcia/utxokit/internal/pkg/transport/http"
	"github.com/gabapcia/utxokit/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/utxokit/internal/staking"
	"github.com/gabapcia/utxokit/internal/transaction"
	"github.com/gabapcia/utxokit/internal/txbuild"
	"github.com/gabapcia/utxokit/internal/txprocessor"
	"github.com/gabapcia/utxokit/internal/utxo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("could not initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Telemetry.Enabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.Telemetry.ServiceName, cfg.NetworkName)
		if initErr != nil {
			return fmt.Errorf("could not initialize telemetry: %w", initErr)
		}
		defer func() { err = errors.Join(err, shutdown(context.WithoutCancel(ctx))) }()
	}

	provider, err := newCacheProvider(ctx, cfg.Cache, cfg.NetworkName)
	if err != nil {
		return fmt.Errorf("could not initialize cache: %w", err)
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}

	conn := http.NewClient(
		http.WithTimeout(cfg.HTTP.Timeout),
		http.WithRetryMax(cfg.HTTP.RetryMax),
		http.WithRetryWaitMin(cfg.HTTP.RetryWaitMin),
		http.WithRetryWaitMax(cfg.HTTP.RetryWaitMax),
	)

	var (
		network = ledgerapi.NewClient(conn, cfg.Network.Host,
			ledgerapi.WithQueryPort(cfg.Network.QueryPort),
			ledgerapi.WithLedgerPort(cfg.Network.LedgerPort),
			ledgerapi.WithSubmissionPort(cfg.Network.SubmissionPort),
			ledgerapi.WithExplorerPort(cfg.Network.ExplorerPort),
			ledgerapi.WithTxPageSize(cfg.Network.TxPageSize),
		)
		lg = bridge.NewClient(jsonrpc.NewClient(conn.StandardClient(), cfg.BridgeEndpoint))

		utxos = utxo.New(network, lg, cachestore.New(provider, cfg.Cache.Root),
			utxo.WithConcurrency(cfg.Concurrency),
			utxo.WithNamespace(cfg.NetworkName),
		)
		fees     = fee.New(network, utxos, lg)
		builders = txbuild.New(network, lg, fees, txbuild.WithStatusPolling(cfg.StatusPollAttempts, cfg.StatusPollDelay))
		assets   = asset.New(network, lg, builders)
		txs      = transaction.New(network, assets, fees, builders,
			txprocessor.New(network, txprocessor.WithConcurrency(cfg.Concurrency)),
		)
	)

	return cli.Run(ctx, cli.Services{
		Keys:         lg,
		Accounts:     account.New(network, utxos),
		Assets:       assets,
		Transactions: txs,
		Staking:      staking.New(builders),
		Statuses:     builders,
	})
}

func newCacheProvider(ctx context.Context, cfg config.Cache, namespace string) (cachestore.Provider, error) {
	switch cfg.Provider {
	case config.CacheFile:
		return file.New(), nil
	case config.CacheRedis:
		return redis.NewClient(ctx, redis.Options{
			Addr:      cfg.RedisAddr,
			Username:  cfg.RedisUsername,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			TTL:       cfg.TTL,
			Namespace: namespace,
		})
	default:
		return memory.New(memory.WithTTL(cfg.TTL)), nil
	}
}
