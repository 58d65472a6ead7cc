package ledgerapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/utxokit/internal/transaction"
	"github.com/gabapcia/utxokit/internal/txprocessor"
)

// errExplorer is wrapped by errors reported inside a Tendermint RPC body.
var errExplorer = errors.New("explorer error")

type (
	// rpcError is the error object of a Tendermint RPC response.
	rpcError struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    string `json:"data"`
	}

	// txResponse is a transaction as returned by tx and tx_search.
	txResponse struct {
		Hash     string `json:"hash"`
		Height   uint64 `json:"height,string"`
		Tx       string `json:"tx"`
		TxResult struct {
			Code uint32 `json:"code"`
		} `json:"tx_result"`
	}

	blockResponse struct {
		Error  *rpcError `json:"error"`
		Result struct {
			Block struct {
				Header struct {
					Height uint64    `json:"height,string"`
					Time   time.Time `json:"time"`
				} `json:"header"`
			} `json:"block"`
		} `json:"result"`
	}

	txSearchResponse struct {
		Error  *rpcError `json:"error"`
		Result struct {
			Txs        []txResponse `json:"txs"`
			TotalCount uint64       `json:"total_count,string"`
		} `json:"result"`
	}

	txDetailsResponse struct {
		Error  *rpcError  `json:"error"`
		Result txResponse `json:"result"`
	}
)

func (e *rpcError) err() error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%w: [%d] %s %s", errExplorer, e.Code, e.Message, e.Data)
}

func (t txResponse) toTxInfo() txprocessor.TxInfo {
	return txprocessor.TxInfo{
		Hash:   t.Hash,
		Height: t.Height,
		Tx:     t.Tx,
		Code:   t.TxResult.Code,
	}
}

// BlockTime returns the time of the block at height.
func (c *client) BlockTime(ctx context.Context, height uint64) (time.Time, error) {
	query := url.Values{"height": {strconv.FormatUint(height, 10)}}

	var res blockResponse
	if err := c.conn.GetJSON(ctx, c.explorerURL("block", query), &res); err != nil {
		return time.Time{}, fmt.Errorf("get block: %w", err)
	}

	if err := res.Error.err(); err != nil {
		return time.Time{}, fmt.Errorf("get block: %w", err)
	}

	return res.Result.Block.Header.Time, nil
}

// GetTxList returns a page of the transactions sending to or from address,
// newest first.
func (c *client) GetTxList(ctx context.Context, address string, direction transaction.Direction, page int) (transaction.TxPage, error) {
	query := url.Values{
		"query":    {fmt.Sprintf(`"addr.%s.%s='y'"`, direction, address)},
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(c.cfg.txPageSize)},
		"order_by": {`"desc"`},
	}

	var res txSearchResponse
	if err := c.conn.GetJSON(ctx, c.explorerURL("tx_search", query), &res); err != nil {
		return transaction.TxPage{}, fmt.Errorf("search transactions: %w", err)
	}

	if err := res.Error.err(); err != nil {
		return transaction.TxPage{}, fmt.Errorf("search transactions: %w", err)
	}

	txs := make([]txprocessor.TxInfo, len(res.Result.Txs))
	for i, tx := range res.Result.Txs {
		txs[i] = tx.toTxInfo()
	}

	return transaction.TxPage{TotalCount: res.Result.TotalCount, Txs: txs}, nil
}

// GetTransaction returns the transaction with the given hash.
func (c *client) GetTransaction(ctx context.Context, hash string) (txprocessor.TxInfo, error) {
	if !strings.HasPrefix(hash, "0x") {
		hash = "0x" + hash
	}

	var res txDetailsResponse
	if err := c.conn.GetJSON(ctx, c.explorerURL("tx", url.Values{"hash": {hash}}), &res); err != nil {
		return txprocessor.TxInfo{}, fmt.Errorf("get transaction: %w", err)
	}

	if err := res.Error.err(); err != nil {
		return txprocessor.TxInfo{}, fmt.Errorf("get transaction: %w", err)
	}

	return res.Result.toTxInfo(), nil
}
