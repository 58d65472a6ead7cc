package asset

import (
	"context"
	"fmt"

	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/ledger"
	"github.com/gabapcia/utxokit/internal/pkg/amount"
	"github.com/gabapcia/utxokit/internal/pkg/validator"
	"github.com/gabapcia/utxokit/internal/txbuild"
)

// Network reads asset definitions.
type Network interface {
	GetAssetToken(ctx context.Context, code string) (Token, error)
}

// Runner sends an operation through the submission pipeline.
type Runner interface {
	Run(ctx context.Context, wallet keypair.WalletKeyPair, op txbuild.Operation) (string, error)
}

// Service manages custom assets.
type Service interface {
	// FraAssetCode returns the code of the native FRA asset.
	FraAssetCode(ctx context.Context) (string, error)

	// RandomAssetCode returns a fresh code for a new asset definition.
	RandomAssetCode(ctx context.Context) (string, error)

	// GetAssetDetails returns the definition of code with its rules merged
	// over DefaultAssetRules.
	GetAssetDetails(ctx context.Context, code string) (Details, error)

	// DefineAsset defines name, issued by wallet, and returns the submission
	// handle. Nil rules mean DefaultAssetRules.
	DefineAsset(ctx context.Context, wallet keypair.WalletKeyPair, name, memo string, rules *ledger.AssetRules) (string, error)

	// IssueAsset issues value display units of name, converted with
	// DefaultDecimals, and returns the submission handle.
	IssueAsset(ctx context.Context, wallet keypair.WalletKeyPair, name, value string, blind BlindRules) (string, error)
}

type service struct {
	network Network
	codes   ledger.AssetCodes
	runner  Runner
}

var _ Service = (*service)(nil)

// New creates the asset service.
func New(network Network, codes ledger.AssetCodes, runner Runner) *service {
	return &service{
		network: network,
		codes:   codes,
		runner:  runner,
	}
}

// FraAssetCode implements Service.
func (s *service) FraAssetCode(ctx context.Context) (string, error) {
	code, err := s.codes.FraAssetCode(ctx)
	if err != nil {
		return "", fmt.Errorf("could not get fra asset code: %w", err)
	}
	return code, nil
}

// RandomAssetCode implements Service.
func (s *service) RandomAssetCode(ctx context.Context) (string, error) {
	code, err := s.codes.RandomAssetCode(ctx)
	if err != nil {
		return "", fmt.Errorf("could not get random asset code: %w", err)
	}
	return code, nil
}

// GetAssetDetails implements Service.
func (s *service) GetAssetDetails(ctx context.Context, code string) (Details, error) {
	token, err := s.network.GetAssetToken(ctx, code)
	if err != nil {
		return Details{}, fmt.Errorf("could not get asset token of %s: %w", code, err)
	}

	issuer, err := keypair.AddressFromPublicKey(token.IssuerPublicKey)
	if err != nil {
		return Details{}, fmt.Errorf("could not get issuer address of %s: %w", code, err)
	}

	return Details{
		Code:          code,
		IssuerAddress: issuer,
		Memo:          token.Memo,
		Rules:         MergeRules(token.Rules),
		Units:         token.Units,
	}, nil
}

// DefineAsset implements Service.
func (s *service) DefineAsset(ctx context.Context, wallet keypair.WalletKeyPair, name, memo string, rules *ledger.AssetRules) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	r := DefaultAssetRules()
	if rules != nil {
		if err := validator.Validate(rules); err != nil {
			return "", fmt.Errorf("invalid asset rules: %w", err)
		}
		r = *rules
	}

	if memo == "" {
		memo = DefaultMemo
	}

	return s.runner.Run(ctx, wallet, txbuild.Operation{
		Name: "define asset",
		Build: func(ctx context.Context, b txbuild.Builder) error {
			return b.AddOperationCreateAsset(ctx, wallet.KeyPair, memo, name, r)
		},
	})
}

// IssueAsset implements Service.
func (s *service) IssueAsset(ctx context.Context, wallet keypair.WalletKeyPair, name, value string, blind BlindRules) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	units, err := amount.ToBaseUnits(value, DefaultDecimals)
	if err != nil {
		return "", fmt.Errorf("could not convert issue amount: %w", err)
	}

	return s.runner.Run(ctx, wallet, txbuild.Operation{
		Name: "issue asset",
		Build: func(ctx context.Context, b txbuild.Builder) error {
			return b.AddBasicIssueAsset(ctx, wallet.KeyPair, name, b.Height, units, blind.BlindAmount)
		},
	})
}
