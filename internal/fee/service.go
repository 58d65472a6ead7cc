// Package fee builds signed transfer operations: plain transfers to a list of
// receivers and the transfer paying the network fee.
package fee

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/ledger"
	"github.com/gabapcia/utxokit/internal/pkg/telemetry"
	"github.com/gabapcia/utxokit/internal/utxo"

	"go.opentelemetry.io/otel/attribute"
)

var (
	// ErrInsufficientFunds is returned when the wallet outputs of an asset
	// cannot cover the requested transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoReceivers is returned when a transfer has nobody to pay.
	ErrNoReceivers = errors.New("transfer has no receivers")

	// ErrInvalidAmount is returned when a receiver amount is not positive.
	ErrInvalidAmount = errors.New("receiver amount must be positive")
)

// Network lists the outputs owned by a public key.
type Network interface {
	GetOwnedSids(ctx context.Context, publicKey string) ([]uint64, error)
}

// Utxos resolves and prepares the wallet outputs.
type Utxos interface {
	AddUtxo(ctx context.Context, wallet keypair.WalletKeyPair, sids []uint64) ([]utxo.DecryptedItem, error)
	AddUtxoInputs(ctx context.Context, selection []utxo.OutputItem) (utxo.InputsInfo, error)
}

// Ledger is the part of the native ledger used to build transfers.
type Ledger interface {
	ledger.FeeSchedule
	ledger.AssetCodes
	ledger.BuilderFactory
}

// Receiver is one transfer output.
type Receiver struct {
	PublicKey   string
	Amount      *big.Int
	BlindAmount bool
	BlindType   bool
}

// Service builds signed transfer operations.
type Service interface {
	// BuildTransferOperation pays every receiver from the wallet outputs of
	// assetCode and returns the unused value to the wallet as change.
	//
	// Outputs are selected in ledger order until the total of the receivers
	// is covered. Receivers keep their own blinding rules.
	//
	// Parameters:
	//   - ctx: provides cancellation and timeout context.
	//   - wallet: owns the outputs being spent and receives the change.
	//   - receivers: who is paid and how much, in base units.
	//   - assetCode: the asset every receiver is paid in.
	//
	// Returns:
	//   - op: the transfer, ready to be added to a transaction builder.
	//   - err: ErrInsufficientFunds when the wallet cannot cover the total, or
	//     any failure resolving outputs or building the transfer.
	BuildTransferOperation(ctx context.Context, wallet keypair.WalletKeyPair, receivers []Receiver, assetCode string) (ledger.TransferOperation, error)

	// BuildTransferOperationWithFee pays the minimal fee, in FRA, to the fee
	// destination.
	BuildTransferOperationWithFee(ctx context.Context, wallet keypair.WalletKeyPair) (ledger.TransferOperation, error)

	// FeeReceiver returns the receiver paid by BuildTransferOperationWithFee.
	FeeReceiver(ctx context.Context) (Receiver, error)
}

type service struct {
	network Network
	utxos   Utxos
	ledger  Ledger
}

var _ Service = (*service)(nil)

// New creates the fee service.
func New(network Network, utxos Utxos, l Ledger) *service {
	return &service{
		network: network,
		utxos:   utxos,
		ledger:  l,
	}
}

func totalOf(receivers []Receiver) (*big.Int, error) {
	if len(receivers) == 0 {
		return nil, ErrNoReceivers
	}

	total := new(big.Int)
	for i, r := range receivers {
		if r.Amount == nil || r.Amount.Sign() <= 0 {
			return nil, fmt.Errorf("%w: receiver %d", ErrInvalidAmount, i)
		}
		total.Add(total, r.Amount)
	}
	return total, nil
}

// BuildTransferOperation implements Service.
func (s *service) BuildTransferOperation(ctx context.Context, wallet keypair.WalletKeyPair, receivers []Receiver, assetCode string) (_ ledger.TransferOperation, err error) {
	ctx, span := telemetry.StartSpan(ctx, "fee.BuildTransferOperation",
		attribute.String("asset.code", assetCode),
		attribute.Int("receivers", len(receivers)),
	)
	defer telemetry.EndSpan(span, &err)

	total, err := totalOf(receivers)
	if err != nil {
		return "", err
	}

	sids, err := s.network.GetOwnedSids(ctx, wallet.PublicKey)
	if err != nil {
		return "", fmt.Errorf("could not get owned sids: %w", err)
	}

	items, err := s.utxos.AddUtxo(ctx, wallet, sids)
	if err != nil {
		return "", fmt.Errorf("could not get utxos: %w", err)
	}

	selection := utxo.GetSendUtxo(assetCode, total, items)
	if available := utxo.Total(selection); available.Cmp(total) < 0 {
		return "", fmt.Errorf("%w: need %s of %s, have %s", ErrInsufficientFunds, total, assetCode, available)
	}

	inputs, err := s.utxos.AddUtxoInputs(ctx, selection)
	if err != nil {
		return "", fmt.Errorf("could not prepare transfer inputs: %w", err)
	}

	builder, err := s.ledger.NewTransferOperationBuilder(ctx)
	if err != nil {
		return "", fmt.Errorf("could not create transfer operation builder: %w", err)
	}

	for _, in := range inputs.InputParametersList {
		if err := builder.AddInput(ctx, in.TxoRef, in.AssetRecord, in.OwnerMemo, wallet.KeyPair, in.Amount); err != nil {
			return "", fmt.Errorf("could not add transfer input: %w", err)
		}
	}

	for _, r := range receivers {
		output := ledger.Output{
			Amount:             r.Amount,
			RecipientPublicKey: r.PublicKey,
			AssetCode:          assetCode,
			BlindAmount:        r.BlindAmount,
			BlindType:          r.BlindType,
		}
		if err := builder.AddOutput(ctx, output); err != nil {
			return "", fmt.Errorf("could not add transfer output: %w", err)
		}
	}

	if change := new(big.Int).Sub(inputs.InputAmount, total); change.Sign() > 0 {
		output := ledger.Output{
			Amount:             change,
			RecipientPublicKey: wallet.PublicKey,
			AssetCode:          assetCode,
		}
		if err := builder.AddOutput(ctx, output); err != nil {
			return "", fmt.Errorf("could not add change output: %w", err)
		}
	}

	if err := builder.Create(ctx); err != nil {
		return "", fmt.Errorf("could not create transfer operation: %w", err)
	}

	if err := builder.Sign(ctx, wallet.KeyPair); err != nil {
		return "", fmt.Errorf("could not sign transfer operation: %w", err)
	}

	op, err := builder.Transaction(ctx)
	if err != nil {
		return "", fmt.Errorf("could not get transfer operation: %w", err)
	}

	return op, nil
}

// FeeReceiver implements Service.
func (s *service) FeeReceiver(ctx context.Context) (Receiver, error) {
	minimalFee, err := s.ledger.MinimalFee(ctx)
	if err != nil {
		return Receiver{}, fmt.Errorf("could not get minimal fee: %w", err)
	}

	destination, err := s.ledger.FeeDestinationPublicKey(ctx)
	if err != nil {
		return Receiver{}, fmt.Errorf("could not get fee destination: %w", err)
	}

	return Receiver{PublicKey: destination, Amount: minimalFee}, nil
}

// BuildTransferOperationWithFee implements Service.
func (s *service) BuildTransferOperationWithFee(ctx context.Context, wallet keypair.WalletKeyPair) (ledger.TransferOperation, error) {
	receiver, err := s.FeeReceiver(ctx)
	if err != nil {
		return "", err
	}

	fraCode, err := s.ledger.FraAssetCode(ctx)
	if err != nil {
		return "", fmt.Errorf("could not get fra asset code: %w", err)
	}

	return s.BuildTransferOperation(ctx, wallet, []Receiver{receiver}, fraCode)
}
