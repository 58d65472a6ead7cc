// Package txbuild creates transaction builders bound to the current ledger
// state, submits them, and runs the fee, builder, attach and submit stages
// shared by every transaction the SDK sends.
package txbuild

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/ledger"
	"github.com/gabapcia/utxokit/internal/pkg/logger"
	"github.com/gabapcia/utxokit/internal/pkg/resilience/retry"
	"github.com/gabapcia/utxokit/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Network is the part of the ledger API used to build and submit transactions.
type Network interface {
	GetStateCommitment(ctx context.Context) (StateCommitment, error)
	SubmitTransaction(ctx context.Context, tx string) (string, error)
	GetTransactionStatus(ctx context.Context, handle string) (TransactionStatus, error)
}

// FeeBuilder builds the transfer paying the network fee.
type FeeBuilder interface {
	BuildTransferOperationWithFee(ctx context.Context, wallet keypair.WalletKeyPair) (ledger.TransferOperation, error)
}

// Builder is a transaction builder together with the height it is bound to.
type Builder struct {
	ledger.TransactionBuilder

	Height uint64
}

// Operation is a transaction kind run through the submission pipeline.
type Operation struct {
	// Name is used in errors, logs and spans, e.g. "define asset".
	Name string

	// Build adds the operation payload to the builder.
	Build func(ctx context.Context, b Builder) error
}

// Service builds and submits transactions.
type Service interface {
	// TransactionBuilder returns an empty builder bound to the current height.
	//
	// Parameters:
	//   - ctx: provides cancellation and timeout context.
	//
	// Returns:
	//   - builder: the wasm builder together with the height it was seeded with.
	//     Height 0 is the genesis commitment and is accepted.
	//   - err: ErrMissingStateCommitment when the ledger answers with an empty
	//     body, or any network or builder failure.
	TransactionBuilder(ctx context.Context) (Builder, error)

	// Submit serializes tb and submits it, returning the handle.
	//
	// Parameters:
	//   - ctx: provides cancellation and timeout context.
	//   - tb: a builder already holding its operations and signatures.
	//
	// Returns:
	//   - handle: the submission handle, usable with WaitForStatus.
	//   - err: ErrMissingHandle when the server accepts the transaction
	//     without a handle, or the serialization or network failure.
	Submit(ctx context.Context, tb ledger.TransactionBuilder) (string, error)

	// Run sends op paid by wallet and returns the submission handle.
	//
	// The fee transfer is built first, then the builder is created at the
	// current height and op applied to it. The fee transfer is attached last
	// and the transaction submitted. The first failing stage stops the run.
	//
	// Parameters:
	//   - ctx: provides cancellation and timeout context.
	//   - wallet: pays the fee and signs the transaction.
	//   - op: applies the domain operation to the builder.
	//
	// Returns:
	//   - handle: the submission handle.
	//   - err: a *StageError naming the stage that failed.
	Run(ctx context.Context, wallet keypair.WalletKeyPair, op Operation) (string, error)

	// WaitForStatus polls handle until it is committed or rejected.
	WaitForStatus(ctx context.Context, handle string) (TransactionStatus, error)
}

type config struct {
	pollAttempts uint
	pollDelay    time.Duration
}

// Option configures the service.
type Option func(*config)

// WithStatusPolling sets how many times and how often WaitForStatus asks for
// the status of a handle.
func WithStatusPolling(attempts uint, delay time.Duration) Option {
	return func(c *config) {
		c.pollAttempts = attempts
		c.pollDelay = delay
	}
}

type service struct {
	network Network
	ledger  ledger.BuilderFactory
	fee     FeeBuilder
	poller  retry.Retry

	submitted metric.Int64Counter
	failed    metric.Int64Counter
}

var _ Service = (*service)(nil)

// New creates the txbuild service.
func New(network Network, l ledger.BuilderFactory, fee FeeBuilder, opts ...Option) *service {
	cfg := config{
		pollAttempts: 20,
		pollDelay:    time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		network: network,
		ledger:  l,
		fee:     fee,
		poller: retry.New(
			retry.WithAttempts(cfg.pollAttempts),
			retry.WithDelay(cfg.pollDelay),
			retry.WithFixedDelay(),
		),
		submitted: telemetry.Int64Counter("txbuild.transactions.submitted", "Transactions accepted by the submission server"),
		failed:    telemetry.Int64Counter("txbuild.transactions.failed", "Transactions that failed before or during submission"),
	}
}

// TransactionBuilder implements Service.
func (s *service) TransactionBuilder(ctx context.Context) (Builder, error) {
	commitment, err := s.network.GetStateCommitment(ctx)
	if err != nil {
		return Builder{}, fmt.Errorf("could not get state commitment: %w", err)
	}

	tb, err := s.ledger.NewTransactionBuilder(ctx, commitment.Height)
	if err != nil {
		return Builder{}, fmt.Errorf("could not get transaction builder: %w", err)
	}

	return Builder{TransactionBuilder: tb, Height: commitment.Height}, nil
}

// Submit implements Service.
func (s *service) Submit(ctx context.Context, tb ledger.TransactionBuilder) (string, error) {
	tx, err := tb.Transaction(ctx)
	if err != nil {
		return "", fmt.Errorf("could not get transaction data: %w", err)
	}

	handle, err := s.network.SubmitTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("could not submit transaction: %w", err)
	}

	if handle == "" {
		return "", ErrMissingHandle
	}

	return handle, nil
}

// Run implements Service.
func (s *service) Run(ctx context.Context, wallet keypair.WalletKeyPair, op Operation) (handle string, err error) {
	ctx = logger.Derive(ctx, "operation", op.Name, "address", wallet.Address)
	ctx, span := telemetry.StartSpan(ctx, "txbuild.Run", attribute.String("operation", op.Name))
	defer telemetry.EndSpan(span, &err)

	fail := func(stage Stage, err error) (string, error) {
		s.failed.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op.Name),
			attribute.String("stage", string(stage)),
		))
		logger.Warn(ctx, "transaction failed", "stage", stage, "error", err)
		return "", &StageError{Operation: op.Name, Stage: stage, Err: err}
	}

	feeOp, err := s.fee.BuildTransferOperationWithFee(ctx, wallet)
	if err != nil {
		return fail(StageFee, fmt.Errorf("could not create fee transfer operation: %w", err))
	}

	builder, err := s.TransactionBuilder(ctx)
	if err != nil {
		return fail(StageBuilder, err)
	}

	if err := op.Build(ctx, builder); err != nil {
		return fail(StageBuilder, fmt.Errorf("could not add %s operation: %w", op.Name, err))
	}

	if err := builder.AddTransferOperation(ctx, feeOp); err != nil {
		return fail(StageAttach, fmt.Errorf("could not add transfer operation: %w", err))
	}

	handle, err = s.Submit(ctx, builder)
	if err != nil {
		return fail(StageSubmit, err)
	}

	s.submitted.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op.Name)))
	logger.Info(ctx, "transaction submitted", "handle", handle, "height", builder.Height)

	return handle, nil
}

// WaitForStatus implements Service.
func (s *service) WaitForStatus(ctx context.Context, handle string) (TransactionStatus, error) {
	var status TransactionStatus

	err := s.poller.Execute(ctx, func() error {
		current, err := s.network.GetTransactionStatus(ctx, handle)
		if err != nil {
			return err
		}

		status = current
		switch current.State {
		case StatusCommitted:
			return nil
		case StatusRejected:
			return retry.Unrecoverable(fmt.Errorf("%w: %s", ErrTransactionRejected, current.Reason))
		default:
			return errPending
		}
	})
	if err != nil {
		return status, fmt.Errorf("could not confirm transaction %s: %w", handle, err)
	}

	return status, nil
}
