// Package bridge implements ledger.Ledger by forwarding every primitive to a
// native ledger sidecar over JSON-RPC. The sidecar owns the cryptography; this
// package only moves documents back and forth.
//
// Builders are stateless on the sidecar: each builder call sends the current
// builder state document and keeps the one returned.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/gabapcia/utxokit/internal/ledger"
	"github.com/gabapcia/utxokit/internal/pkg/amount"
	"github.com/gabapcia/utxokit/internal/pkg/transport/jsonrpc"
)

const methodPrefix = "ledger_"

// client implements ledger.Ledger over a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client
}

var _ ledger.Ledger = (*client)(nil)

// NewClient creates a ledger backed by the sidecar reachable through conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{conn: conn}
}

func (c *client) call(ctx context.Context, method string, params, result any) error {
	if err := c.conn.Call(ctx, methodPrefix+method, params, result); err != nil {
		return fmt.Errorf("%s%s: %w", methodPrefix, method, err)
	}
	return nil
}

func (c *client) callString(ctx context.Context, method string, params any) (string, error) {
	var out string
	return out, c.call(ctx, method, params, &out)
}

type (
	recordParams struct {
		Record json.RawMessage `json:"record"`
	}

	memoParams struct {
		Memo json.RawMessage `json:"memo"`
	}

	openParams struct {
		Record    ledger.AssetRecord `json:"record"`
		OwnerMemo ledger.OwnerMemo   `json:"owner_memo"`
		KeyPair   ledger.KeyPair     `json:"keypair"`
	}

	assetTypeParams struct {
		AssetType json.RawMessage `json:"asset_type"`
	}

	privateKeyParams struct {
		PrivateKey string `json:"private_key"`
	}

	keyPairParams struct {
		KeyPair ledger.KeyPair `json:"keypair"`
	}
)

func (c *client) ParseAssetRecord(ctx context.Context, raw json.RawMessage) (ledger.AssetRecord, error) {
	var record ledger.AssetRecord
	return record, c.call(ctx, "parseAssetRecord", recordParams{Record: raw}, &record)
}

func (c *client) ParseOwnerMemo(ctx context.Context, raw json.RawMessage) (ledger.OwnerMemo, error) {
	var memo ledger.OwnerMemo
	return memo, c.call(ctx, "parseOwnerMemo", memoParams{Memo: raw}, &memo)
}

func (c *client) OpenAssetRecord(ctx context.Context, record ledger.AssetRecord, memo ledger.OwnerMemo, kp ledger.KeyPair) (ledger.OpenedRecord, error) {
	var opened ledger.OpenedRecord
	params := openParams{Record: record, OwnerMemo: memo, KeyPair: kp}
	return opened, c.call(ctx, "openAssetRecord", params, &opened)
}

func (c *client) DecodeAssetType(ctx context.Context, assetType json.RawMessage) (string, error) {
	return c.callString(ctx, "decodeAssetType", assetTypeParams{AssetType: assetType})
}

func (c *client) KeyPairFromPrivateKey(ctx context.Context, privateKey string) (ledger.KeyPair, error) {
	kp, err := c.callString(ctx, "keypairFromPrivateKey", privateKeyParams{PrivateKey: privateKey})
	return ledger.KeyPair(kp), err
}

func (c *client) NewKeyPair(ctx context.Context) (ledger.KeyPair, error) {
	kp, err := c.callString(ctx, "newKeypair", struct{}{})
	return ledger.KeyPair(kp), err
}

func (c *client) PublicKey(ctx context.Context, kp ledger.KeyPair) (string, error) {
	return c.callString(ctx, "publicKey", keyPairParams{KeyPair: kp})
}

func (c *client) PrivateKey(ctx context.Context, kp ledger.KeyPair) (string, error) {
	return c.callString(ctx, "privateKey", keyPairParams{KeyPair: kp})
}

func (c *client) FraAssetCode(ctx context.Context) (string, error) {
	return c.callString(ctx, "fraAssetCode", struct{}{})
}

func (c *client) RandomAssetCode(ctx context.Context) (string, error) {
	return c.callString(ctx, "randomAssetCode", struct{}{})
}

// MinimalFee returns the fee in base units. The sidecar sends it as a decimal
// string so it survives values beyond 2^53.
func (c *client) MinimalFee(ctx context.Context) (*big.Int, error) {
	value, err := c.callString(ctx, "minimalFee", struct{}{})
	if err != nil {
		return nil, err
	}

	fee, err := amount.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%sminimalFee: %w", methodPrefix, err)
	}
	return fee, nil
}

func (c *client) FeeDestinationPublicKey(ctx context.Context) (string, error) {
	return c.callString(ctx, "feeDestination", struct{}{})
}
