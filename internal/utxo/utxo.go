package utxo

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/gabapcia/utxokit/internal/ledger"
)

// CacheEntryPrefix names the cache documents holding decrypted UTXOs.
const CacheEntryPrefix = "utxoDataCache"

// sidKey is the key of a sid inside a cache document.
func sidKey(sid uint64) string {
	return fmt.Sprintf("sid_%d", sid)
}

// Body is the cleartext content of an output.
type Body struct {
	AssetType   string   `json:"asset_type"`
	Amount      *big.Int `json:"amount"`
	BlindAmount bool     `json:"blind_amount,omitempty"`
	BlindType   bool     `json:"blind_type,omitempty"`
}

// Item is an unspent output as the network returns it.
type Item struct {
	Sid       uint64           `json:"sid"`
	Utxo      json.RawMessage  `json:"utxo"`
	OwnerMemo ledger.OwnerMemo `json:"ownerMemo"`
}

// DecryptedItem is an Item whose amount and asset type have been decrypted
// with the owner's key. It is never modified once built.
type DecryptedItem struct {
	Item

	Address  string          `json:"address"`
	Body     Body            `json:"body"`
	MemoData json.RawMessage `json:"memoData,omitempty"`
}

// OutputItem is one output picked by GetSendUtxo. OriginAmount is the full
// value of the output and Amount the part of it the spend consumes.
type OutputItem struct {
	Sid          uint64           `json:"sid"`
	Utxo         json.RawMessage  `json:"utxo"`
	OwnerMemo    ledger.OwnerMemo `json:"ownerMemo"`
	OriginAmount *big.Int         `json:"originAmount"`
	Amount       *big.Int         `json:"amount"`
	MemoData     json.RawMessage  `json:"memoData,omitempty"`
}

// InputParameter is a ledger-ready transfer input.
type InputParameter struct {
	TxoRef      ledger.TxoRef
	AssetRecord ledger.AssetRecord
	OwnerMemo   ledger.OwnerMemo
	Amount      *big.Int
	MemoData    json.RawMessage
}

// InputsInfo is the assembled input list. InputAmount sums the full value of
// every selected output, so InputAmount minus the spend is the change.
type InputsInfo struct {
	InputParametersList []InputParameter
	InputAmount         *big.Int
}
