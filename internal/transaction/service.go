// Package transaction builds transfers to one or many receivers and lists the
// transactions of an address.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/utxokit/internal/asset"
	"github.com/gabapcia/utxokit/internal/fee"
	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/ledger"
	"github.com/gabapcia/utxokit/internal/pkg/amount"
	"github.com/gabapcia/utxokit/internal/pkg/validator"
	"github.com/gabapcia/utxokit/internal/txbuild"
	"github.com/gabapcia/utxokit/internal/txprocessor"
)

// ErrInvalidDirection is returned for a tx list direction other than to or from.
var ErrInvalidDirection = errors.New("direction must be to or from")

// Direction selects the side of the transfers listed by GetTxList.
type Direction string

const (
	DirectionTo   Direction = "to"
	DirectionFrom Direction = "from"
)

// Receiver is paid Amount display units of the transferred asset.
type Receiver struct {
	PublicKey string `validate:"required"`
	Amount    string `validate:"required,amount"`
}

// TxPage is one page of the transactions of an address.
type TxPage struct {
	TotalCount uint64
	Txs        []txprocessor.TxInfo
}

// TxList is a page of decoded transactions.
type TxList struct {
	TotalCount uint64
	Txs        []txprocessor.ProcessedTxInfo
}

// Network lists transactions.
type Network interface {
	GetTxList(ctx context.Context, address string, direction Direction, page int) (TxPage, error)
	GetTransaction(ctx context.Context, hash string) (txprocessor.TxInfo, error)
}

// Assets resolves asset decimals and codes.
type Assets interface {
	GetAssetDetails(ctx context.Context, code string) (asset.Details, error)
	FraAssetCode(ctx context.Context) (string, error)
}

// Transfers builds signed transfer operations.
type Transfers interface {
	BuildTransferOperation(ctx context.Context, wallet keypair.WalletKeyPair, receivers []fee.Receiver, assetCode string) (ledger.TransferOperation, error)
	BuildTransferOperationWithFee(ctx context.Context, wallet keypair.WalletKeyPair) (ledger.TransferOperation, error)
	FeeReceiver(ctx context.Context) (fee.Receiver, error)
}

// Builders creates and submits transaction builders.
type Builders interface {
	TransactionBuilder(ctx context.Context) (txbuild.Builder, error)
	Submit(ctx context.Context, tb ledger.TransactionBuilder) (string, error)
}

// Processor decodes transactions.
type Processor interface {
	ProcessTxInfoItem(ctx context.Context, item txprocessor.TxInfo) (txprocessor.ProcessedTxInfo, error)
	ProcessTxInfoList(ctx context.Context, items []txprocessor.TxInfo) ([]txprocessor.ProcessedTxInfo, error)
}

// Service sends assets and lists transactions.
type Service interface {
	// SendToMany returns a builder, not yet submitted, paying every receiver
	// in assetCode together with the network fee.
	SendToMany(ctx context.Context, wallet keypair.WalletKeyPair, receivers []Receiver, assetCode string, blind asset.BlindRules) (ledger.TransactionBuilder, error)

	// SendToAddress pays value display units of assetCode to a bech32
	// address. It is SendToMany with a single receiver.
	SendToAddress(ctx context.Context, wallet keypair.WalletKeyPair, address, value, assetCode string, blind asset.BlindRules) (ledger.TransactionBuilder, error)

	// SendToPublicKey is SendToAddress for a base64 public key.
	SendToPublicKey(ctx context.Context, wallet keypair.WalletKeyPair, publicKey, value, assetCode string, blind asset.BlindRules) (ledger.TransactionBuilder, error)

	// Submit submits tb and returns its handle.
	Submit(ctx context.Context, tb ledger.TransactionBuilder) (string, error)

	// GetTxList returns one page of the transactions of address.
	//
	// Parameters:
	//   - ctx: provides cancellation and timeout context.
	//   - address: the bech32 address whose history is listed.
	//   - direction: whether address is the sender or the receiver.
	//   - page: the 1-based page number. Lower values fetch the first page.
	//
	// Returns:
	//   - list: the decoded transactions of the page and the total count.
	//     Transactions that cannot be decoded are left out.
	//   - err: ErrInvalidDirection for an unknown direction, or any failure
	//     fetching the page.
	GetTxList(ctx context.Context, address string, direction Direction, page int) (TxList, error)

	// GetTransactionDetails returns the decoded transaction with the given hash.
	GetTransactionDetails(ctx context.Context, hash string) (txprocessor.ProcessedTxInfo, error)
}

type service struct {
	network   Network
	assets    Assets
	transfers Transfers
	builders  Builders
	processor Processor
}

var _ Service = (*service)(nil)

// New creates the transaction service.
func New(network Network, assets Assets, transfers Transfers, builders Builders, processor Processor) *service {
	return &service{
		network:   network,
		assets:    assets,
		transfers: transfers,
		builders:  builders,
		processor: processor,
	}
}

// SendToMany implements Service.
func (s *service) SendToMany(ctx context.Context, wallet keypair.WalletKeyPair, receivers []Receiver, assetCode string, blind asset.BlindRules) (ledger.TransactionBuilder, error) {
	details, err := s.assets.GetAssetDetails(ctx, assetCode)
	if err != nil {
		return nil, err
	}

	feeReceivers := make([]fee.Receiver, 0, len(receivers)+1)
	for i, r := range receivers {
		if err := validator.Validate(r); err != nil {
			return nil, fmt.Errorf("invalid receiver %d: %w", i, err)
		}

		units, err := amount.ToBaseUnits(r.Amount, details.Rules.Decimals)
		if err != nil {
			return nil, fmt.Errorf("invalid receiver %d: %w", i, err)
		}

		feeReceivers = append(feeReceivers, fee.Receiver{
			PublicKey:   r.PublicKey,
			Amount:      units,
			BlindAmount: blind.BlindAmount,
			BlindType:   blind.BlindType,
		})
	}

	fraCode, err := s.assets.FraAssetCode(ctx)
	if err != nil {
		return nil, err
	}

	isFraTransfer := assetCode == fraCode
	if isFraTransfer {
		feeReceiver, err := s.transfers.FeeReceiver(ctx)
		if err != nil {
			return nil, err
		}
		feeReceivers = append(feeReceivers, feeReceiver)
	}

	transferOp, err := s.transfers.BuildTransferOperation(ctx, wallet, feeReceivers, assetCode)
	if err != nil {
		return nil, fmt.Errorf("could not create transfer operation (main): %w", err)
	}

	builder, err := s.builders.TransactionBuilder(ctx)
	if err != nil {
		return nil, err
	}

	if err := builder.AddTransferOperation(ctx, transferOp); err != nil {
		return nil, fmt.Errorf("could not add transfer operation: %w", err)
	}

	if !isFraTransfer {
		feeOp, err := s.transfers.BuildTransferOperationWithFee(ctx, wallet)
		if err != nil {
			return nil, fmt.Errorf("could not create transfer operation for fee: %w", err)
		}

		if err := builder.AddTransferOperation(ctx, feeOp); err != nil {
			return nil, fmt.Errorf("could not add transfer operation for fee: %w", err)
		}
	}

	return builder.TransactionBuilder, nil
}

// SendToAddress implements Service.
func (s *service) SendToAddress(ctx context.Context, wallet keypair.WalletKeyPair, address, value, assetCode string, blind asset.BlindRules) (ledger.TransactionBuilder, error) {
	publicKey, err := keypair.PublicKeyFromAddress(address)
	if err != nil {
		return nil, err
	}

	return s.SendToMany(ctx, wallet, []Receiver{{PublicKey: publicKey, Amount: value}}, assetCode, blind)
}

// SendToPublicKey implements Service.
func (s *service) SendToPublicKey(ctx context.Context, wallet keypair.WalletKeyPair, publicKey, value, assetCode string, blind asset.BlindRules) (ledger.TransactionBuilder, error) {
	address, err := keypair.AddressFromPublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	return s.SendToAddress(ctx, wallet, address, value, assetCode, blind)
}

// Submit implements Service.
func (s *service) Submit(ctx context.Context, tb ledger.TransactionBuilder) (string, error) {
	return s.builders.Submit(ctx, tb)
}

// GetTxList implements Service.
func (s *service) GetTxList(ctx context.Context, address string, direction Direction, page int) (TxList, error) {
	if direction != DirectionTo && direction != DirectionFrom {
		return TxList{}, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	if page < 1 {
		page = 1
	}

	result, err := s.network.GetTxList(ctx, address, direction, page)
	if err != nil {
		return TxList{}, fmt.Errorf("could not fetch a list of transactions: %w", err)
	}

	txs, err := s.processor.ProcessTxInfoList(ctx, result.Txs)
	if err != nil {
		return TxList{}, fmt.Errorf("could not process transactions: %w", err)
	}

	return TxList{TotalCount: result.TotalCount, Txs: txs}, nil
}

// GetTransactionDetails implements Service.
func (s *service) GetTransactionDetails(ctx context.Context, hash string) (txprocessor.ProcessedTxInfo, error) {
	item, err := s.network.GetTransaction(ctx, hash)
	if err != nil {
		return txprocessor.ProcessedTxInfo{}, fmt.Errorf("could not fetch transaction %s: %w", hash, err)
	}

	return s.processor.ProcessTxInfoItem(ctx, item)
}
