package ledgerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gabapcia/utxokit/internal/account"
)

// utxoResponse is the body of utxo_sid.
type utxoResponse struct {
	Utxo json.RawMessage `json:"utxo"`
}

// GetOwnedSids returns the unspent sids owned by publicKey.
func (c *client) GetOwnedSids(ctx context.Context, publicKey string) ([]uint64, error) {
	var sids []uint64
	if err := c.conn.GetJSON(ctx, c.queryURL("get_owned_utxos/"+url.PathEscape(publicKey)), &sids); err != nil {
		return nil, fmt.Errorf("get owned utxos: %w", err)
	}
	return sids, nil
}

// GetRelatedSids returns every sid, spent or not, related to publicKey.
func (c *client) GetRelatedSids(ctx context.Context, publicKey string) ([]uint64, error) {
	var sids []uint64
	if err := c.conn.GetJSON(ctx, c.queryURL("get_related_sids/"+url.PathEscape(publicKey)), &sids); err != nil {
		return nil, fmt.Errorf("get related sids: %w", err)
	}
	return sids, nil
}

// GetUtxo returns the asset record stored under sid. A null record means the
// ledger does not know the sid.
func (c *client) GetUtxo(ctx context.Context, sid uint64) (json.RawMessage, error) {
	var res utxoResponse
	if err := c.conn.GetJSON(ctx, c.ledgerURL(fmt.Sprintf("utxo_sid/%d", sid)), &res); err != nil {
		return nil, fmt.Errorf("get utxo: %w", err)
	}
	return res.Utxo, nil
}

// GetOwnerMemo returns the owner memo of sid, JSON null when there is none.
func (c *client) GetOwnerMemo(ctx context.Context, sid uint64) (json.RawMessage, error) {
	var memo json.RawMessage
	if err := c.conn.GetJSON(ctx, c.queryURL(fmt.Sprintf("get_owner_memo/%d", sid)), &memo); err != nil {
		return nil, fmt.Errorf("get owner memo: %w", err)
	}

	if len(memo) == 0 {
		return json.RawMessage("null"), nil
	}
	return memo, nil
}

// GetIssuedRecords returns the records issued by publicKey as [record, memo] pairs.
func (c *client) GetIssuedRecords(ctx context.Context, publicKey string) ([]account.IssuedRecord, error) {
	var pairs [][2]json.RawMessage
	if err := c.conn.GetJSON(ctx, c.queryURL("get_issued_records/"+url.PathEscape(publicKey)), &pairs); err != nil {
		return nil, fmt.Errorf("get issued records: %w", err)
	}

	records := make([]account.IssuedRecord, len(pairs))
	for i, pair := range pairs {
		records[i] = account.IssuedRecord{Record: pair[0], OwnerMemo: pair[1]}
	}
	return records, nil
}
