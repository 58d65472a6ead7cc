package bridge

import (
	"context"
	"encoding/json"
	"math/big"
	"sync"

	"github.com/gabapcia/utxokit/internal/ledger"
)

// builderState is the state document the sidecar returns from builder calls.
type builderState struct {
	State json.RawMessage `json:"state"`
}

// stateful keeps the state document of a sidecar builder. Calls on the same
// builder are serialized.
type stateful struct {
	conn *client

	mu    sync.Mutex
	state json.RawMessage
}

// step sends method with the current state merged into params and stores the
// state that comes back.
func (s *stateful) step(ctx context.Context, method string, params map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if params == nil {
		params = make(map[string]any, 1)
	}
	params["state"] = s.state

	var next builderState
	if err := s.conn.call(ctx, method, params, &next); err != nil {
		return err
	}

	s.state = next.State
	return nil
}

// finish sends method with the current state and decodes the result into out.
func (s *stateful) finish(ctx context.Context, method string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn.call(ctx, method, map[string]any{"state": s.state}, out)
}

func (c *client) NewTransactionBuilder(ctx context.Context, height uint64) (ledger.TransactionBuilder, error) {
	var init builderState
	if err := c.call(ctx, "newTransactionBuilder", map[string]any{"seq_id": height}, &init); err != nil {
		return nil, err
	}
	return &transactionBuilder{stateful{conn: c, state: init.State}}, nil
}

func (c *client) NewTransferOperationBuilder(ctx context.Context) (ledger.TransferOperationBuilder, error) {
	var init builderState
	if err := c.call(ctx, "newTransferOperationBuilder", struct{}{}, &init); err != nil {
		return nil, err
	}
	return &transferOperationBuilder{stateful{conn: c, state: init.State}}, nil
}

type transactionBuilder struct {
	stateful
}

var _ ledger.TransactionBuilder = (*transactionBuilder)(nil)

func (b *transactionBuilder) AddOperationCreateAsset(ctx context.Context, kp ledger.KeyPair, memo, code string, rules ledger.AssetRules) error {
	return b.step(ctx, "txAddOperationCreateAsset", map[string]any{
		"keypair": kp,
		"memo":    memo,
		"code":    code,
		"rules":   rules,
	})
}

func (b *transactionBuilder) AddBasicIssueAsset(ctx context.Context, kp ledger.KeyPair, code string, seqNum uint64, amount *big.Int, blindAmount bool) error {
	return b.step(ctx, "txAddBasicIssueAsset", map[string]any{
		"keypair":      kp,
		"code":         code,
		"seq_num":      seqNum,
		"amount":       amount.String(),
		"blind_amount": blindAmount,
	})
}

func (b *transactionBuilder) AddOperationUndelegate(ctx context.Context, kp ledger.KeyPair) error {
	return b.step(ctx, "txAddOperationUndelegate", map[string]any{"keypair": kp})
}

func (b *transactionBuilder) AddOperationClaim(ctx context.Context, kp ledger.KeyPair, amount *big.Int) error {
	return b.step(ctx, "txAddOperationClaim", map[string]any{
		"keypair": kp,
		"amount":  amount.String(),
	})
}

func (b *transactionBuilder) AddTransferOperation(ctx context.Context, op ledger.TransferOperation) error {
	return b.step(ctx, "txAddTransferOperation", map[string]any{"operation": string(op)})
}

func (b *transactionBuilder) Transaction(ctx context.Context) (string, error) {
	var tx string
	return tx, b.finish(ctx, "txTransaction", &tx)
}

type transferOperationBuilder struct {
	stateful
}

var _ ledger.TransferOperationBuilder = (*transferOperationBuilder)(nil)

func (b *transferOperationBuilder) AddInput(ctx context.Context, ref ledger.TxoRef, record ledger.AssetRecord, memo ledger.OwnerMemo, kp ledger.KeyPair, amount *big.Int) error {
	return b.step(ctx, "transferAddInput", map[string]any{
		"txo_ref":    ref,
		"record":     record,
		"owner_memo": memo,
		"keypair":    kp,
		"amount":     amount.String(),
	})
}

func (b *transferOperationBuilder) AddOutput(ctx context.Context, output ledger.Output) error {
	return b.step(ctx, "transferAddOutput", map[string]any{
		"amount":       output.Amount.String(),
		"public_key":   output.RecipientPublicKey,
		"asset_code":   output.AssetCode,
		"blind_amount": output.BlindAmount,
		"blind_type":   output.BlindType,
	})
}

func (b *transferOperationBuilder) Create(ctx context.Context) error {
	return b.step(ctx, "transferCreate", nil)
}

func (b *transferOperationBuilder) Sign(ctx context.Context, kp ledger.KeyPair) error {
	return b.step(ctx, "transferSign", map[string]any{"keypair": kp})
}

func (b *transferOperationBuilder) Transaction(ctx context.Context) (ledger.TransferOperation, error) {
	var op string
	if err := b.finish(ctx, "transferTransaction", &op); err != nil {
		return "", err
	}
	return ledger.TransferOperation(op), nil
}
