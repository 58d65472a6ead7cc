// Package ledgertest provides an in-memory ledger.Ledger for tests.
//
// Records handled by the fake are plain JSON documents:
//
//	{"amount":"1000","asset_type":"<code>"}
//
// A record with "confidential":true can only be opened with an owner memo.
// Transfers must balance per asset: the full value of every input record has to
// be matched by the outputs, so callers add their own change output.
package ledgertest

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/gabapcia/utxokit/internal/ledger"
)

// FraCode is the native asset code returned by FraAssetCode.
var FraCode = base64.URLEncoding.EncodeToString(make([]byte, 32))

// DefaultFeeDestination is the fee destination public key used unless overridden.
var DefaultFeeDestination = PublicKeyOf("fee-destination")

// DefaultMinimalFee is the minimal fee used unless overridden.
const DefaultMinimalFee = 10000

// Record returns the fake wire form of a record holding amount units of code.
func Record(code string, amount int64) json.RawMessage {
	data, _ := json.Marshal(record{Amount: big.NewInt(amount).String(), AssetType: code})
	return data
}

// ConfidentialRecord is like Record but requires an owner memo to be opened.
func ConfidentialRecord(code string, amount int64) json.RawMessage {
	data, _ := json.Marshal(record{Amount: big.NewInt(amount).String(), AssetType: code, Confidential: true})
	return data
}

// PublicKeyOf returns the public key the fake derives for privateKey.
func PublicKeyOf(privateKey string) string {
	sum := sha256.Sum256([]byte(privateKey))
	return base64.URLEncoding.EncodeToString(sum[:])
}

type record struct {
	Amount       string `json:"amount"`
	AssetType    string `json:"asset_type"`
	Confidential bool   `json:"confidential,omitempty"`
}

func decodeRecord(raw []byte) (record, error) {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		return record{}, err
	}

	if r.Amount == "" || r.AssetType == "" {
		return record{}, errors.New("record misses amount or asset_type")
	}

	return r, nil
}

// Operation is one operation recorded by a fake transaction builder.
type Operation struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// Fake implements ledger.Ledger in memory. The zero value is not usable; call New.
type Fake struct {
	mu sync.Mutex

	fails  map[string]error
	calls  map[string]int
	nextID int

	MinimalFeeValue *big.Int
	FeeDestination  string

	// Builders holds every transaction builder created, in creation order.
	Builders []*TransactionBuilder
}

var _ ledger.Ledger = (*Fake)(nil)

// New returns a Fake with the default fee schedule.
func New() *Fake {
	return &Fake{
		fails:           make(map[string]error),
		calls:           make(map[string]int),
		MinimalFeeValue: big.NewInt(DefaultMinimalFee),
		FeeDestination:  DefaultFeeDestination,
	}
}

// Fail makes every later call to method return err. A nil err clears it.
func (f *Fake) Fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err == nil {
		delete(f.fails, method)
		return
	}
	f.fails[method] = err
}

// Calls reports how many times method was invoked.
func (f *Fake) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[method]
}

// TotalCalls reports how many ledger calls were made overall.
func (f *Fake) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *Fake) enter(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[method]++
	return f.fails[method]
}

func (f *Fake) ParseAssetRecord(_ context.Context, raw json.RawMessage) (ledger.AssetRecord, error) {
	if err := f.enter("ParseAssetRecord"); err != nil {
		return nil, err
	}

	if _, err := decodeRecord(raw); err != nil {
		return nil, fmt.Errorf("parse asset record: %w", err)
	}

	return ledger.AssetRecord(append([]byte(nil), raw...)), nil
}

func (f *Fake) ParseOwnerMemo(_ context.Context, raw json.RawMessage) (ledger.OwnerMemo, error) {
	if err := f.enter("ParseOwnerMemo"); err != nil {
		return nil, err
	}

	if !json.Valid(raw) {
		return nil, errors.New("parse owner memo: invalid json")
	}

	return ledger.OwnerMemo(append([]byte(nil), raw...)), nil
}

func (f *Fake) OpenAssetRecord(_ context.Context, rec ledger.AssetRecord, memo ledger.OwnerMemo, kp ledger.KeyPair) (ledger.OpenedRecord, error) {
	if err := f.enter("OpenAssetRecord"); err != nil {
		return ledger.OpenedRecord{}, err
	}

	if kp == "" {
		return ledger.OpenedRecord{}, errors.New("open asset record: empty key pair")
	}

	r, err := decodeRecord(rec)
	if err != nil {
		return ledger.OpenedRecord{}, fmt.Errorf("open asset record: %w", err)
	}

	if r.Confidential && len(memo) == 0 {
		return ledger.OpenedRecord{}, errors.New("open asset record: owner memo required")
	}

	assetType, _ := json.Marshal(r.AssetType)
	return ledger.OpenedRecord{
		AssetType:   assetType,
		Amount:      r.Amount,
		BlindAmount: r.Confidential,
		BlindType:   r.Confidential,
	}, nil
}

func (f *Fake) DecodeAssetType(_ context.Context, assetType json.RawMessage) (string, error) {
	if err := f.enter("DecodeAssetType"); err != nil {
		return "", err
	}

	var code string
	if err := json.Unmarshal(assetType, &code); err != nil {
		return "", fmt.Errorf("decode asset type: %w", err)
	}
	return code, nil
}

func (f *Fake) KeyPairFromPrivateKey(_ context.Context, privateKey string) (ledger.KeyPair, error) {
	if err := f.enter("KeyPairFromPrivateKey"); err != nil {
		return "", err
	}

	if privateKey == "" {
		return "", errors.New("empty private key")
	}
	return ledger.KeyPair("kp:" + privateKey), nil
}

func (f *Fake) NewKeyPair(ctx context.Context) (ledger.KeyPair, error) {
	if err := f.enter("NewKeyPair"); err != nil {
		return "", err
	}

	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.mu.Unlock()

	return ledger.KeyPair(fmt.Sprintf("kp:generated-%d", id)), nil
}

func (f *Fake) PublicKey(_ context.Context, kp ledger.KeyPair) (string, error) {
	if err := f.enter("PublicKey"); err != nil {
		return "", err
	}

	priv, ok := strings.CutPrefix(string(kp), "kp:")
	if !ok {
		return "", errors.New("malformed key pair")
	}
	return PublicKeyOf(priv), nil
}

func (f *Fake) PrivateKey(_ context.Context, kp ledger.KeyPair) (string, error) {
	if err := f.enter("PrivateKey"); err != nil {
		return "", err
	}

	priv, ok := strings.CutPrefix(string(kp), "kp:")
	if !ok {
		return "", errors.New("malformed key pair")
	}
	return priv, nil
}

func (f *Fake) FraAssetCode(context.Context) (string, error) {
	if err := f.enter("FraAssetCode"); err != nil {
		return "", err
	}
	return FraCode, nil
}

func (f *Fake) RandomAssetCode(context.Context) (string, error) {
	if err := f.enter("RandomAssetCode"); err != nil {
		return "", err
	}

	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.mu.Unlock()

	sum := sha256.Sum256(fmt.Appendf(nil, "asset-%d", id))
	return base64.URLEncoding.EncodeToString(sum[:]), nil
}

func (f *Fake) MinimalFee(context.Context) (*big.Int, error) {
	if err := f.enter("MinimalFee"); err != nil {
		return nil, err
	}
	return new(big.Int).Set(f.MinimalFeeValue), nil
}

func (f *Fake) FeeDestinationPublicKey(context.Context) (string, error) {
	if err := f.enter("FeeDestinationPublicKey"); err != nil {
		return "", err
	}
	return f.FeeDestination, nil
}

func (f *Fake) NewTransactionBuilder(_ context.Context, height uint64) (ledger.TransactionBuilder, error) {
	if err := f.enter("NewTransactionBuilder"); err != nil {
		return nil, err
	}

	tb := &TransactionBuilder{fake: f, Height: height}

	f.mu.Lock()
	f.Builders = append(f.Builders, tb)
	f.mu.Unlock()

	return tb, nil
}

func (f *Fake) NewTransferOperationBuilder(context.Context) (ledger.TransferOperationBuilder, error) {
	if err := f.enter("NewTransferOperationBuilder"); err != nil {
		return nil, err
	}
	return &TransferBuilder{fake: f}, nil
}

// TransactionBuilder records the operations added to it.
type TransactionBuilder struct {
	fake *Fake

	Height     uint64
	Operations []Operation
}

var _ ledger.TransactionBuilder = (*TransactionBuilder)(nil)

func (b *TransactionBuilder) add(method string, args map[string]any) error {
	if err := b.fake.enter(method); err != nil {
		return err
	}

	b.Operations = append(b.Operations, Operation{Name: method, Args: args})
	return nil
}

func (b *TransactionBuilder) AddOperationCreateAsset(_ context.Context, kp ledger.KeyPair, memo, code string, rules ledger.AssetRules) error {
	return b.add("AddOperationCreateAsset", map[string]any{"keypair": string(kp), "memo": memo, "code": code, "rules": rules})
}

func (b *TransactionBuilder) AddBasicIssueAsset(_ context.Context, kp ledger.KeyPair, code string, seqNum uint64, amount *big.Int, blindAmount bool) error {
	return b.add("AddBasicIssueAsset", map[string]any{"keypair": string(kp), "code": code, "seq_num": seqNum, "amount": amount.String(), "blind": blindAmount})
}

func (b *TransactionBuilder) AddOperationUndelegate(_ context.Context, kp ledger.KeyPair) error {
	return b.add("AddOperationUndelegate", map[string]any{"keypair": string(kp)})
}

func (b *TransactionBuilder) AddOperationClaim(_ context.Context, kp ledger.KeyPair, amount *big.Int) error {
	return b.add("AddOperationClaim", map[string]any{"keypair": string(kp), "amount": amount.String()})
}

func (b *TransactionBuilder) AddTransferOperation(_ context.Context, op ledger.TransferOperation) error {
	return b.add("AddTransferOperation", map[string]any{"operation": string(op)})
}

func (b *TransactionBuilder) Transaction(context.Context) (string, error) {
	if err := b.fake.enter("Transaction"); err != nil {
		return "", err
	}

	data, err := json.Marshal(map[string]any{"seq_id": b.Height, "operations": b.Operations})
	return string(data), err
}

// TransferInput is an input recorded by TransferBuilder.
type TransferInput struct {
	Ref    ledger.TxoRef
	Record ledger.AssetRecord
	Memo   ledger.OwnerMemo
	Amount *big.Int
}

// TransferBuilder records inputs and outputs and checks that they balance on Create.
type TransferBuilder struct {
	fake *Fake

	Inputs  []TransferInput
	Outputs []ledger.Output
	Created bool
	Signers []ledger.KeyPair
}

var _ ledger.TransferOperationBuilder = (*TransferBuilder)(nil)

func (b *TransferBuilder) AddInput(_ context.Context, ref ledger.TxoRef, rec ledger.AssetRecord, memo ledger.OwnerMemo, kp ledger.KeyPair, amount *big.Int) error {
	if err := b.fake.enter("AddInput"); err != nil {
		return err
	}

	r, err := decodeRecord(rec)
	if err != nil {
		return fmt.Errorf("add input: %w", err)
	}

	value, _ := new(big.Int).SetString(r.Amount, 10)
	if amount.Sign() <= 0 || amount.Cmp(value) > 0 {
		return fmt.Errorf("add input: amount %s outside record value %s", amount, value)
	}

	b.Inputs = append(b.Inputs, TransferInput{Ref: ref, Record: rec, Memo: memo, Amount: new(big.Int).Set(amount)})
	return nil
}

func (b *TransferBuilder) AddOutput(_ context.Context, output ledger.Output) error {
	if err := b.fake.enter("AddOutput"); err != nil {
		return err
	}

	if output.Amount == nil || output.Amount.Sign() <= 0 {
		return errors.New("add output: amount must be positive")
	}

	b.Outputs = append(b.Outputs, output)
	return nil
}

func (b *TransferBuilder) Create(context.Context) error {
	if err := b.fake.enter("Create"); err != nil {
		return err
	}

	if len(b.Inputs) == 0 {
		return errors.New("create: transfer has no inputs")
	}

	balance := make(map[string]*big.Int)
	for _, in := range b.Inputs {
		r, _ := decodeRecord(in.Record)
		value, _ := new(big.Int).SetString(r.Amount, 10)
		if balance[r.AssetType] == nil {
			balance[r.AssetType] = new(big.Int)
		}
		balance[r.AssetType].Add(balance[r.AssetType], value)
	}
	for _, out := range b.Outputs {
		if balance[out.AssetCode] == nil {
			balance[out.AssetCode] = new(big.Int)
		}
		balance[out.AssetCode].Sub(balance[out.AssetCode], out.Amount)
	}
	for code, rest := range balance {
		if rest.Sign() != 0 {
			return fmt.Errorf("create: asset %s does not balance (%s left)", code, rest)
		}
	}

	b.Created = true
	return nil
}

func (b *TransferBuilder) Sign(_ context.Context, kp ledger.KeyPair) error {
	if err := b.fake.enter("Sign"); err != nil {
		return err
	}

	if !b.Created {
		return errors.New("sign: transfer not created")
	}

	b.Signers = append(b.Signers, kp)
	return nil
}

func (b *TransferBuilder) Transaction(context.Context) (ledger.TransferOperation, error) {
	if err := b.fake.enter("TransferTransaction"); err != nil {
		return "", err
	}

	if len(b.Signers) == 0 {
		return "", errors.New("transfer not signed")
	}

	outputs := make([]map[string]any, 0, len(b.Outputs))
	for _, o := range b.Outputs {
		outputs = append(outputs, map[string]any{"amount": o.Amount.String(), "to": o.RecipientPublicKey, "asset": o.AssetCode})
	}

	data, err := json.Marshal(map[string]any{"inputs": len(b.Inputs), "outputs": outputs})
	return ledger.TransferOperation(data), err
}
