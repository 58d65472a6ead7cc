package txprocessor

import (
	"encoding/json"
	"fmt"
)

// Kind names an operation variant.
type Kind string

const (
	KindDefineAsset   Kind = "defineAsset"
	KindIssueAsset    Kind = "issueAsset"
	KindTransferAsset Kind = "transferAsset"
	KindClaim         Kind = "claim"
	KindDelegation    Kind = "delegation"
	KindUnDelegation  Kind = "unDelegation"
	KindUnsupported   Kind = "unsupported"
)

// PublicKey is the {"key": ...} wrapper the ledger uses for signer keys.
type PublicKey struct {
	Key string `json:"key"`
}

// AssetCode is an asset code as a list of byte values.
type AssetCode struct {
	Val []int `json:"val"`
}

// PureAsset is the asset body of a definition.
type PureAsset struct {
	Code       AssetCode       `json:"code"`
	Issuer     PublicKey       `json:"issuer"`
	Memo       string          `json:"memo"`
	AssetRules json.RawMessage `json:"asset_rules"`
}

type DefineAssetOperation struct {
	Body struct {
		Asset PureAsset `json:"asset"`
	} `json:"body"`
	PubKey    PublicKey `json:"pubkey"`
	Signature string    `json:"signature"`
}

type IssueAssetOperation struct {
	Body struct {
		Code    AssetCode       `json:"code"`
		SeqNum  uint64          `json:"seq_num"`
		Records json.RawMessage `json:"records"`
	} `json:"body"`
	PubKey    PublicKey `json:"pubkey"`
	Signature string    `json:"signature"`
}

// TxRecord is a transfer input or output record.
type TxRecord struct {
	Amount    json.RawMessage `json:"amount"`
	AssetType json.RawMessage `json:"asset_type"`
	PublicKey string          `json:"public_key"`
}

type TransferAssetOperation struct {
	Body struct {
		Inputs  json.RawMessage `json:"inputs"`
		Outputs []struct {
			ID     *uint64  `json:"id"`
			Record TxRecord `json:"record"`
		} `json:"outputs"`
		Transfer struct {
			Inputs  []TxRecord `json:"inputs"`
			Outputs []TxRecord `json:"outputs"`
		} `json:"transfer"`
		TransferType string `json:"transfer_type"`
	} `json:"body"`
}

type ClaimOperation struct {
	Body      json.RawMessage `json:"body"`
	PubKey    string          `json:"pubkey"`
	Signature string          `json:"signature"`
}

type DelegationOperation struct {
	Body struct {
		Validator string          `json:"validator"`
		Amount    json.RawMessage `json:"amount"`
	} `json:"body"`
	PubKey    string `json:"pubkey"`
	Signature string `json:"signature"`
}

type UnDelegationOperation struct {
	Body      json.RawMessage `json:"body"`
	PubKey    string          `json:"pubkey"`
	Signature string          `json:"signature"`
}

// Operation is one entry of a transaction operation list. At most one of the
// variant fields is set; an entry with none of them is unsupported.
type Operation struct {
	DefineAsset   *DefineAssetOperation   `json:"DefineAsset,omitempty"`
	IssueAsset    *IssueAssetOperation    `json:"IssueAsset,omitempty"`
	TransferAsset *TransferAssetOperation `json:"TransferAsset,omitempty"`
	Claim         *ClaimOperation         `json:"Claim,omitempty"`
	Delegation    *DelegationOperation    `json:"Delegation,omitempty"`
	UnDelegation  *UnDelegationOperation  `json:"UnDelegation,omitempty"`

	// Raw is the operation as it appeared in the transaction.
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the variant and keeps the raw document.
func (o *Operation) UnmarshalJSON(data []byte) error {
	type plain Operation

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode operation: %w", err)
	}

	*o = Operation(p)
	o.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// Kind reports which variant o holds.
func (o Operation) Kind() Kind {
	switch {
	case o.DefineAsset != nil:
		return KindDefineAsset
	case o.IssueAsset != nil:
		return KindIssueAsset
	case o.TransferAsset != nil:
		return KindTransferAsset
	case o.Claim != nil:
		return KindClaim
	case o.Delegation != nil:
		return KindDelegation
	case o.UnDelegation != nil:
		return KindUnDelegation
	default:
		return KindUnsupported
	}
}

// ParsedTx is a decoded transaction body.
type ParsedTx struct {
	Body struct {
		Operations []Operation `json:"operations"`
	} `json:"body"`
}
