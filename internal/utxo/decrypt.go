package utxo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/ledger"
	"github.com/gabapcia/utxokit/internal/pkg/amount"
)

// ErrMissingUtxo is returned when the network answers without a record for a sid.
var ErrMissingUtxo = errors.New("utxo data is missing")

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// DecryptUtxoItem implements Service.
//
// The record goes through four ledger stages (parse record, parse memo, open,
// decode asset type) and the amount is then read as an arbitrary precision
// integer. Each failure is wrapped with the stage that produced it.
func (s *service) DecryptUtxoItem(ctx context.Context, sid uint64, wallet keypair.WalletKeyPair, utxoData, memoData json.RawMessage) (DecryptedItem, error) {
	record, err := s.ledger.ParseAssetRecord(ctx, utxoData)
	if err != nil {
		return DecryptedItem{}, fmt.Errorf("could not parse asset record of sid %d: %w", sid, err)
	}

	var memo ledger.OwnerMemo
	if !isNull(memoData) {
		memo, err = s.ledger.ParseOwnerMemo(ctx, memoData)
		if err != nil {
			return DecryptedItem{}, fmt.Errorf("could not parse owner memo of sid %d: %w", sid, err)
		}
	}

	opened, err := s.ledger.OpenAssetRecord(ctx, record, memo, wallet.KeyPair)
	if err != nil {
		return DecryptedItem{}, fmt.Errorf("could not open asset record of sid %d: %w", sid, err)
	}

	assetType, err := s.ledger.DecodeAssetType(ctx, opened.AssetType)
	if err != nil {
		return DecryptedItem{}, fmt.Errorf("could not decode asset type of sid %d: %w", sid, err)
	}

	value, err := amount.Parse(opened.Amount)
	if err != nil {
		return DecryptedItem{}, fmt.Errorf("could not read amount of sid %d: %w", sid, err)
	}

	item := DecryptedItem{
		Item: Item{
			Sid:       sid,
			Utxo:      cloneRaw(utxoData),
			OwnerMemo: memo,
		},
		Address: wallet.Address,
		Body: Body{
			AssetType:   assetType,
			Amount:      value,
			BlindAmount: opened.BlindAmount,
			BlindType:   opened.BlindType,
		},
	}
	if !isNull(memoData) {
		item.MemoData = cloneRaw(memoData)
	}

	return item, nil
}

// GetUtxoItem implements Service.
func (s *service) GetUtxoItem(ctx context.Context, sid uint64, wallet keypair.WalletKeyPair, cached *DecryptedItem) (DecryptedItem, error) {
	if cached != nil {
		s.cacheHits.Add(ctx, 1)
		return *cached, nil
	}
	s.cacheMisses.Add(ctx, 1)

	utxoData, err := s.network.GetUtxo(ctx, sid)
	if err != nil {
		return DecryptedItem{}, fmt.Errorf("could not fetch utxo data for sid %d: %w", sid, err)
	}
	if isNull(utxoData) {
		return DecryptedItem{}, fmt.Errorf("could not fetch utxo data for sid %d: %w", sid, ErrMissingUtxo)
	}

	memoData, err := s.network.GetOwnerMemo(ctx, sid)
	if err != nil {
		return DecryptedItem{}, fmt.Errorf("could not fetch memo data for sid %d: %w", sid, err)
	}

	return s.DecryptUtxoItem(ctx, sid, wallet, utxoData, memoData)
}
