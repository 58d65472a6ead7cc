// Package asset defines and issues custom assets and reads their on-chain
// definition.
package asset

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/utxokit/internal/ledger"
)

// DefaultDecimals is the number of decimals assumed for amounts of assets
// whose definition is not known, including every issuance.
const DefaultDecimals = 6

// DefaultMemo is attached to an asset definition when no memo is given.
const DefaultMemo = "memo"

// ErrEmptyName is returned when an asset is defined or issued without a code.
var ErrEmptyName = errors.New("asset name is empty")

// DefaultAssetRules returns the rules used when an asset is defined without
// explicit rules, and the base onto which on-chain rules are merged.
func DefaultAssetRules() ledger.AssetRules {
	return ledger.AssetRules{
		Transferable: true,
		Updatable:    false,
		Decimals:     DefaultDecimals,
	}
}

// BlindRules select which parts of an issued record are confidential.
type BlindRules struct {
	BlindAmount bool
	BlindType   bool
}

// TokenRules is the rule set of an asset as published by the ledger. Unset
// fields fall back to DefaultAssetRules.
type TokenRules struct {
	Transferable *bool
	Updatable    *bool
	Decimals     *uint8
	MaxUnits     string
	Traceable    bool
}

// UnmarshalJSON decodes the ledger form, where max_units is a number or null
// and an asset is traceable when it carries tracing policies.
func (r *TokenRules) UnmarshalJSON(data []byte) error {
	var wire struct {
		Transferable    *bool             `json:"transferable"`
		Updatable       *bool             `json:"updatable"`
		Decimals        *uint8            `json:"decimals"`
		MaxUnits        json.Number       `json:"max_units"`
		TracingPolicies []json.RawMessage `json:"tracing_policies"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decode asset rules: %w", err)
	}

	*r = TokenRules{
		Transferable: wire.Transferable,
		Updatable:    wire.Updatable,
		Decimals:     wire.Decimals,
		MaxUnits:     wire.MaxUnits.String(),
		Traceable:    len(wire.TracingPolicies) > 0,
	}
	return nil
}

// Token is an asset definition as published by the ledger.
type Token struct {
	IssuerPublicKey string
	Memo            string
	Rules           TokenRules
	Units           uint64
}

// Details describe a defined asset.
type Details struct {
	Code          string
	IssuerAddress string
	Memo          string
	Rules         ledger.AssetRules
	Units         uint64
}

// MergeRules applies the published rules over DefaultAssetRules.
func MergeRules(published TokenRules) ledger.AssetRules {
	rules := DefaultAssetRules()
	if published.Transferable != nil {
		rules.Transferable = *published.Transferable
	}
	if published.Updatable != nil {
		rules.Updatable = *published.Updatable
	}
	if published.Decimals != nil {
		rules.Decimals = *published.Decimals
	}
	rules.MaxUnits = published.MaxUnits
	rules.Traceable = published.Traceable
	return rules
}
