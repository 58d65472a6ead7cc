package ledgertest

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

// Chain is an in-memory view of the ledger's UTXO set. It answers the owned
// sid, utxo and owner memo queries of the network client.
type Chain struct {
	mu      sync.Mutex
	nextSid uint64
	utxos   map[uint64]json.RawMessage
	memos   map[uint64]json.RawMessage
	owners  map[string][]uint64
	fails   map[uint64]error
}

// NewChain returns an empty chain. Sids start at 1.
func NewChain() *Chain {
	return &Chain{
		nextSid: 1,
		utxos:   make(map[uint64]json.RawMessage),
		memos:   make(map[uint64]json.RawMessage),
		owners:  make(map[string][]uint64),
		fails:   make(map[uint64]error),
	}
}

// Mint stores record as a new output owned by publicKey and returns its sid.
func (c *Chain) Mint(publicKey string, record json.RawMessage) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	sid := c.nextSid
	c.nextSid++

	c.utxos[sid] = record
	c.owners[publicKey] = append(c.owners[publicKey], sid)
	return sid
}

// SetMemo attaches an owner memo to sid.
func (c *Chain) SetMemo(sid uint64, memo json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.memos[sid] = memo
}

// FailMemo makes the owner memo query of sid fail with err.
func (c *Chain) FailMemo(sid uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fails[sid] = err
}

// GetOwnedSids returns the sids owned by publicKey in mint order.
func (c *Chain) GetOwnedSids(_ context.Context, publicKey string) ([]uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.owners[publicKey]), nil
}

// GetUtxo returns the record of sid.
func (c *Chain) GetUtxo(_ context.Context, sid uint64) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.utxos[sid]
	if !ok {
		return nil, fmt.Errorf("unknown sid %d", sid)
	}
	return record, nil
}

// GetOwnerMemo returns the owner memo of sid, or JSON null.
func (c *Chain) GetOwnerMemo(_ context.Context, sid uint64) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.fails[sid]; err != nil {
		return nil, err
	}

	memo, ok := c.memos[sid]
	if !ok {
		return json.RawMessage("null"), nil
	}
	return memo, nil
}
