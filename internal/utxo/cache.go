package utxo

import (
	"context"
	"fmt"

	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// cachePath returns the cache document of a wallet.
func (s *service) cachePath(address string) string {
	key := address
	if s.cfg.namespace != "" {
		key = s.cfg.namespace + "_" + address
	}
	return s.cache.Path(CacheEntryPrefix, key)
}

// AddUtxo implements Service.
//
// The wallet cache document is locked for the whole call so concurrent calls
// for the same wallet run one after the other. What gets written back is the
// set of sids resolved by this call only, replacing the previous document.
func (s *service) AddUtxo(ctx context.Context, wallet keypair.WalletKeyPair, sids []uint64) ([]DecryptedItem, error) {
	ctx = logger.Derive(ctx, "address", wallet.Address)
	path := s.cachePath(wallet.Address)

	unlock := s.cache.Lock(path)
	defer unlock()

	var cached map[string]DecryptedItem
	if _, err := s.cache.Read(ctx, path, &cached); err != nil {
		return nil, fmt.Errorf("could not read utxo cache: %w", err)
	}

	resolved := make([]*DecryptedItem, len(sids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.concurrency)
	for i, sid := range sids {
		g.Go(func() error {
			var hit *DecryptedItem
			if item, ok := cached[sidKey(sid)]; ok {
				hit = &item
			}

			item, err := s.GetUtxoItem(gctx, sid, wallet, hit)
			if err != nil {
				logger.Warn(gctx, "skipping utxo", "sid", sid, "error", err)
				return nil
			}

			resolved[i] = &item
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := make([]DecryptedItem, 0, len(sids))
	delta := make(map[string]DecryptedItem, len(sids))
	for _, item := range resolved {
		if item == nil {
			continue
		}
		items = append(items, *item)
		delta[sidKey(item.Sid)] = *item
	}

	if err := s.cache.Write(ctx, path, delta); err != nil {
		logger.Error(ctx, "could not write utxo cache", "path", path, "error", err)
	}

	logger.Debug(ctx, "utxos resolved", "requested", len(sids), "resolved", len(items))
	return items, nil
}
