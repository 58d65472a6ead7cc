// Package staking sends undelegation and reward claim transactions.
package staking

import (
	"context"
	"errors"
	"math/big"

	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/txbuild"
)

// ErrInvalidClaimAmount is returned when a claim is not for a positive amount.
var ErrInvalidClaimAmount = errors.New("claim amount must be positive")

// Runner sends an operation through the submission pipeline.
type Runner interface {
	Run(ctx context.Context, wallet keypair.WalletKeyPair, op txbuild.Operation) (string, error)
}

// Service sends staking transactions and returns their submission handles.
type Service interface {
	// UnDelegate withdraws the whole delegation of wallet.
	UnDelegate(ctx context.Context, wallet keypair.WalletKeyPair) (string, error)

	// Claim claims amount of the staking rewards of wallet, in base units.
	Claim(ctx context.Context, wallet keypair.WalletKeyPair, amount *big.Int) (string, error)
}

type service struct {
	runner Runner
}

var _ Service = (*service)(nil)

// New creates the staking service.
func New(runner Runner) *service {
	return &service{runner: runner}
}

// UnDelegate implements Service.
func (s *service) UnDelegate(ctx context.Context, wallet keypair.WalletKeyPair) (string, error) {
	return s.runner.Run(ctx, wallet, txbuild.Operation{
		Name: "undelegate",
		Build: func(ctx context.Context, b txbuild.Builder) error {
			return b.AddOperationUndelegate(ctx, wallet.KeyPair)
		},
	})
}

// Claim implements Service.
func (s *service) Claim(ctx context.Context, wallet keypair.WalletKeyPair, amount *big.Int) (string, error) {
	if amount == nil || amount.Sign() <= 0 {
		return "", ErrInvalidClaimAmount
	}

	value := new(big.Int).Set(amount)
	return s.runner.Run(ctx, wallet, txbuild.Operation{
		Name: "claim",
		Build: func(ctx context.Context, b txbuild.Builder) error {
			return b.AddOperationClaim(ctx, wallet.KeyPair, value)
		},
	})
}
