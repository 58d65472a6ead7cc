package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidTxoRef is returned when a TxoRef document is neither absolute nor relative.
var ErrInvalidTxoRef = errors.New("invalid txo reference")

// KeyPair is the ledger's encoded key pair. Its content is opaque to the SDK and
// is only ever handed back to the ledger.
type KeyPair string

// AssetRecord is a parsed ledger asset record (a UTXO body) in the ledger's JSON form.
type AssetRecord json.RawMessage

// MarshalJSON keeps the record verbatim when it is embedded in other documents.
func (r AssetRecord) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON stores a copy of data.
func (r *AssetRecord) UnmarshalJSON(data []byte) error {
	*r = append((*r)[0:0], data...)
	return nil
}

// OwnerMemo is the encrypted memo attached to a confidential record. A nil memo
// means the record carries none.
type OwnerMemo json.RawMessage

// MarshalJSON keeps the memo verbatim, or null when absent.
func (m OwnerMemo) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("null"), nil
	}
	return m, nil
}

// UnmarshalJSON stores a copy of data. A JSON null leaves the memo empty.
func (m *OwnerMemo) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = nil
		return nil
	}
	*m = append((*m)[0:0], data...)
	return nil
}

// TxoRef points at a transaction output either by its ledger-wide sid
// (absolute) or by its index among the outputs of the transaction being built
// (relative).
type TxoRef struct {
	Index    uint64
	Relative bool
}

// AbsoluteTxoRef references the output with the given sid.
func AbsoluteTxoRef(sid uint64) TxoRef {
	return TxoRef{Index: sid}
}

// RelativeTxoRef references the output at index within the current transaction.
func RelativeTxoRef(index uint64) TxoRef {
	return TxoRef{Index: index, Relative: true}
}

// MarshalJSON encodes the reference as {"Absolute":n} or {"Relative":n}.
func (r TxoRef) MarshalJSON() ([]byte, error) {
	key := "Absolute"
	if r.Relative {
		key = "Relative"
	}
	return json.Marshal(map[string]uint64{key: r.Index})
}

// UnmarshalJSON decodes the {"Absolute":n} / {"Relative":n} form.
func (r *TxoRef) UnmarshalJSON(data []byte) error {
	var doc map[string]uint64
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTxoRef, err)
	}

	if len(doc) != 1 {
		return fmt.Errorf("%w: %s", ErrInvalidTxoRef, data)
	}

	if v, ok := doc["Absolute"]; ok {
		*r = AbsoluteTxoRef(v)
		return nil
	}
	if v, ok := doc["Relative"]; ok {
		*r = RelativeTxoRef(v)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidTxoRef, data)
}

// OpenedRecord is the cleartext view of an asset record after decryption.
type OpenedRecord struct {
	// AssetType is the asset type as the ledger returns it; pass it to
	// DecodeAssetType to obtain the asset code.
	AssetType json.RawMessage `json:"asset_type"`

	// Amount is the amount in base units, as a decimal string.
	Amount string `json:"amount"`

	BlindAmount bool `json:"blind_amount"`
	BlindType   bool `json:"blind_type"`
}

// AssetRules constrain how a defined asset may be issued and moved.
type AssetRules struct {
	Transferable bool `json:"transferable"`
	Updatable    bool `json:"updatable"`

	// Decimals is the number of fractional digits of one display unit.
	Decimals uint8 `json:"decimals" validate:"lte=18"`

	Traceable bool `json:"traceable"`

	// MaxUnits caps the total issuance, in base units. Empty means uncapped.
	MaxUnits string `json:"max_units,omitempty" validate:"omitempty,number"`
}

// TransferOperation is a built and signed transfer operation in the ledger's
// wire form, ready to be attached to a transaction builder.
type TransferOperation string

// Output describes one transfer output.
type Output struct {
	Amount             *big.Int
	RecipientPublicKey string
	AssetCode          string
	BlindAmount        bool
	BlindType          bool
}
