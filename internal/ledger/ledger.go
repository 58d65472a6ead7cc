// Package ledger declares the capabilities the SDK consumes from the native
// ledger module: record decryption, key handling, fee constants and the
// transaction and transfer builders.
//
// Nothing in this package performs cryptography. Implementations forward to the
// native module (see internal/infra/ledger/bridge) or fake it in tests
// (see internal/ledger/ledgertest).
package ledger

import (
	"context"
	"encoding/json"
	"math/big"
)

// RecordOpener parses and decrypts ledger asset records.
type RecordOpener interface {
	// ParseAssetRecord parses the JSON of a client asset record.
	ParseAssetRecord(ctx context.Context, raw json.RawMessage) (AssetRecord, error)

	// ParseOwnerMemo parses the JSON of an owner memo.
	ParseOwnerMemo(ctx context.Context, raw json.RawMessage) (OwnerMemo, error)

	// OpenAssetRecord decrypts record with the wallet key pair. memo may be nil
	// for non-confidential records.
	OpenAssetRecord(ctx context.Context, record AssetRecord, memo OwnerMemo, kp KeyPair) (OpenedRecord, error)

	// DecodeAssetType turns the asset type of an opened record into the
	// base64 asset code used everywhere else.
	DecodeAssetType(ctx context.Context, assetType json.RawMessage) (string, error)
}

// KeyManager derives and encodes key pairs.
type KeyManager interface {
	// KeyPairFromPrivateKey restores a key pair from its encoded private key.
	KeyPairFromPrivateKey(ctx context.Context, privateKey string) (KeyPair, error)

	// NewKeyPair generates a fresh key pair.
	NewKeyPair(ctx context.Context) (KeyPair, error)

	// PublicKey returns the base64 public key of kp.
	PublicKey(ctx context.Context, kp KeyPair) (string, error)

	// PrivateKey returns the encoded private key of kp.
	PrivateKey(ctx context.Context, kp KeyPair) (string, error)
}

// AssetCodes provides asset code constants and generation.
type AssetCodes interface {
	// FraAssetCode returns the code of the native asset used for fees.
	FraAssetCode(ctx context.Context) (string, error)

	// RandomAssetCode returns a new unique asset code.
	RandomAssetCode(ctx context.Context) (string, error)
}

// FeeSchedule exposes the network fee constants.
type FeeSchedule interface {
	// MinimalFee is the fee, in FRA base units, every transaction must pay.
	MinimalFee(ctx context.Context) (*big.Int, error)

	// FeeDestinationPublicKey is the public key fees are paid to.
	FeeDestinationPublicKey(ctx context.Context) (string, error)
}

// BuilderFactory creates transaction and transfer builders.
type BuilderFactory interface {
	// NewTransactionBuilder returns an empty builder bound to the ledger height
	// taken from the current state commitment.
	NewTransactionBuilder(ctx context.Context, height uint64) (TransactionBuilder, error)

	// NewTransferOperationBuilder returns an empty transfer operation builder.
	NewTransferOperationBuilder(ctx context.Context) (TransferOperationBuilder, error)
}

// TransactionBuilder accumulates operations into one transaction.
type TransactionBuilder interface {
	AddOperationCreateAsset(ctx context.Context, kp KeyPair, memo, code string, rules AssetRules) error
	AddBasicIssueAsset(ctx context.Context, kp KeyPair, code string, seqNum uint64, amount *big.Int, blindAmount bool) error
	AddOperationUndelegate(ctx context.Context, kp KeyPair) error
	AddOperationClaim(ctx context.Context, kp KeyPair, amount *big.Int) error
	AddTransferOperation(ctx context.Context, op TransferOperation) error

	// Transaction serializes the builder to the wire form accepted by the
	// submission server.
	Transaction(ctx context.Context) (string, error)
}

// TransferOperationBuilder builds a single transfer operation.
type TransferOperationBuilder interface {
	AddInput(ctx context.Context, ref TxoRef, record AssetRecord, memo OwnerMemo, kp KeyPair, amount *big.Int) error
	AddOutput(ctx context.Context, output Output) error
	Create(ctx context.Context) error
	Sign(ctx context.Context, kp KeyPair) error
	Transaction(ctx context.Context) (TransferOperation, error)
}

// Ledger is the full set of native ledger capabilities.
type Ledger interface {
	RecordOpener
	KeyManager
	AssetCodes
	FeeSchedule
	BuilderFactory
}
