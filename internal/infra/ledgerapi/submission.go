package ledgerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gabapcia/utxokit/internal/txbuild"
)

// SubmitTransaction posts the serialized transaction and returns its handle.
func (c *client) SubmitTransaction(ctx context.Context, tx string) (string, error) {
	var handle string
	if err := c.conn.PostJSON(ctx, c.submissionURL("submit_transaction"), json.RawMessage(tx), &handle); err != nil {
		return "", fmt.Errorf("submit transaction: %w", err)
	}
	return handle, nil
}

// GetTransactionStatus returns the status of a submitted transaction. The
// server answers "Pending", {"Committed":[txnSid,[outputSids]]} or
// {"Rejected":"reason"}.
func (c *client) GetTransactionStatus(ctx context.Context, handle string) (txbuild.TransactionStatus, error) {
	var raw json.RawMessage
	if err := c.conn.GetJSON(ctx, c.submissionURL("txn_status/"+url.PathEscape(handle)), &raw); err != nil {
		return txbuild.TransactionStatus{}, fmt.Errorf("get transaction status: %w", err)
	}

	return decodeStatus(raw)
}

func decodeStatus(raw json.RawMessage) (txbuild.TransactionStatus, error) {
	var state string
	if err := json.Unmarshal(raw, &state); err == nil {
		if state == "Pending" {
			return txbuild.TransactionStatus{State: txbuild.StatusPending}, nil
		}
		return txbuild.TransactionStatus{State: txbuild.StatusUnknown, Reason: state}, nil
	}

	var variant struct {
		Committed *[2]json.RawMessage `json:"Committed"`
		Rejected  *string             `json:"Rejected"`
	}
	if err := json.Unmarshal(raw, &variant); err != nil {
		return txbuild.TransactionStatus{}, fmt.Errorf("decode transaction status: %w", err)
	}

	switch {
	case variant.Committed != nil:
		status := txbuild.TransactionStatus{State: txbuild.StatusCommitted}
		if err := json.Unmarshal(variant.Committed[0], &status.TxnSid); err != nil {
			return txbuild.TransactionStatus{}, fmt.Errorf("decode committed txn sid: %w", err)
		}
		if err := json.Unmarshal(variant.Committed[1], &status.OutputSids); err != nil {
			return txbuild.TransactionStatus{}, fmt.Errorf("decode committed output sids: %w", err)
		}
		return status, nil
	case variant.Rejected != nil:
		return txbuild.TransactionStatus{State: txbuild.StatusRejected, Reason: *variant.Rejected}, nil
	default:
		return txbuild.TransactionStatus{State: txbuild.StatusUnknown, Reason: string(raw)}, nil
	}
}
