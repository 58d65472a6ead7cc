// Package account reports what a wallet owns.
package account

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/pkg/types"
	"github.com/gabapcia/utxokit/internal/utxo"
)

// IssuedRecord is an output created by an issuance of the wallet, with its
// owner memo when the issuance was confidential.
type IssuedRecord struct {
	Record    json.RawMessage
	OwnerMemo json.RawMessage
}

// Network lists the outputs related to a public key.
type Network interface {
	GetOwnedSids(ctx context.Context, publicKey string) ([]uint64, error)
	GetRelatedSids(ctx context.Context, publicKey string) ([]uint64, error)
	GetIssuedRecords(ctx context.Context, publicKey string) ([]IssuedRecord, error)
}

// Utxos resolves wallet outputs.
type Utxos interface {
	AddUtxo(ctx context.Context, wallet keypair.WalletKeyPair, sids []uint64) ([]utxo.DecryptedItem, error)
}

// Service reports balances and outputs of a wallet.
type Service interface {
	// OwnedUtxos returns the decrypted outputs owned by wallet. Outputs that
	// cannot be resolved are left out.
	OwnedUtxos(ctx context.Context, wallet keypair.WalletKeyPair) ([]utxo.DecryptedItem, error)

	// GetBalance returns the amount of assetCode owned by wallet, in base units.
	GetBalance(ctx context.Context, wallet keypair.WalletKeyPair, assetCode string) (*big.Int, error)

	// Balances returns the amount owned by wallet of every asset it holds.
	Balances(ctx context.Context, wallet keypair.WalletKeyPair) (map[string]*big.Int, error)

	RelatedSids(ctx context.Context, wallet keypair.WalletKeyPair) ([]uint64, error)

	// IssuedRecords returns the records of the assets issued by wallet.
	IssuedRecords(ctx context.Context, wallet keypair.WalletKeyPair) ([]IssuedRecord, error)
}

type service struct {
	network Network
	utxos   Utxos
}

var _ Service = (*service)(nil)

// New creates the account service.
func New(network Network, utxos Utxos) *service {
	return &service{network: network, utxos: utxos}
}

// OwnedUtxos implements Service.
func (s *service) OwnedUtxos(ctx context.Context, wallet keypair.WalletKeyPair) ([]utxo.DecryptedItem, error) {
	sids, err := s.network.GetOwnedSids(ctx, wallet.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("could not get owned sids: %w", err)
	}

	items, err := s.utxos.AddUtxo(ctx, wallet, sids)
	if err != nil {
		return nil, fmt.Errorf("could not get utxos: %w", err)
	}

	return items, nil
}

// GetBalance implements Service.
func (s *service) GetBalance(ctx context.Context, wallet keypair.WalletKeyPair, assetCode string) (*big.Int, error) {
	items, err := s.OwnedUtxos(ctx, wallet)
	if err != nil {
		return nil, err
	}

	balance := new(big.Int)
	for _, item := range items {
		if item.Body.AssetType == assetCode && item.Body.Amount != nil {
			balance.Add(balance, item.Body.Amount)
		}
	}

	return balance, nil
}

// Balances implements Service.
func (s *service) Balances(ctx context.Context, wallet keypair.WalletKeyPair) (map[string]*big.Int, error) {
	items, err := s.OwnedUtxos(ctx, wallet)
	if err != nil {
		return nil, err
	}

	balances := types.NewDefaultMap[string](func() *big.Int { return new(big.Int) })
	for _, item := range items {
		if item.Body.Amount == nil {
			continue
		}

		total := balances.Get(item.Body.AssetType)
		total.Add(total, item.Body.Amount)
	}

	return balances.ToMap(), nil
}

// RelatedSids implements Service.
func (s *service) RelatedSids(ctx context.Context, wallet keypair.WalletKeyPair) ([]uint64, error) {
	sids, err := s.network.GetRelatedSids(ctx, wallet.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("could not get related sids: %w", err)
	}
	return sids, nil
}

// IssuedRecords implements Service.
func (s *service) IssuedRecords(ctx context.Context, wallet keypair.WalletKeyPair) ([]IssuedRecord, error) {
	records, err := s.network.GetIssuedRecords(ctx, wallet.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("could not get issued records: %w", err)
	}
	return records, nil
}
