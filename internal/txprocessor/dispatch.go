package txprocessor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/utxokit/internal/asset"
	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/pkg/types"
)

var errUnhandledKind = errors.New("unhandled operation kind")

// processOperation resolves the participants of op according to its kind.
func processOperation(op Operation) (ProcessedOperation, error) {
	return processKind(op, op.Kind())
}

func processKind(op Operation, kind Kind) (ProcessedOperation, error) {
	switch kind {
	case KindDefineAsset:
		return processDefineAsset(op)
	case KindIssueAsset:
		return processSigned(op, kind, op.IssueAsset.PubKey.Key)
	case KindTransferAsset:
		return processTransfer(op)
	case KindClaim:
		return processSigned(op, kind, op.Claim.PubKey)
	case KindDelegation:
		return processSigned(op, kind, op.Delegation.PubKey)
	case KindUnDelegation:
		return processSigned(op, kind, op.UnDelegation.PubKey)
	case KindUnsupported:
		return ProcessedOperation{Kind: KindUnsupported, Original: op}, nil
	default:
		return ProcessedOperation{}, fmt.Errorf("%w %q", errUnhandledKind, kind)
	}
}

// processSigned handles operations whose only participant is the signer.
func processSigned(op Operation, kind Kind, publicKey string) (ProcessedOperation, error) {
	address, err := keypair.AddressFromPublicKey(publicKey)
	if err != nil {
		return ProcessedOperation{}, fmt.Errorf("%s signer: %w", kind, err)
	}

	return ProcessedOperation{
		Kind:     kind,
		From:     []string{address},
		To:       []string{address},
		Original: op,
	}, nil
}

func processDefineAsset(op Operation) (ProcessedOperation, error) {
	definition := op.DefineAsset.Body.Asset

	processed, err := processSigned(op, KindDefineAsset, definition.Issuer.Key)
	if err != nil {
		return ProcessedOperation{}, err
	}

	var published asset.TokenRules
	if len(definition.AssetRules) > 0 && string(definition.AssetRules) != "null" {
		if err := json.Unmarshal(definition.AssetRules, &published); err != nil {
			return ProcessedOperation{}, err
		}
	}

	rules := asset.MergeRules(published)
	processed.AssetRules = &rules
	return processed, nil
}

// addresses returns the distinct sorted addresses of the record owners.
func addresses(records []TxRecord) ([]string, error) {
	set := types.NewSet[string]()
	for _, r := range records {
		address, err := keypair.AddressFromPublicKey(r.PublicKey)
		if err != nil {
			return nil, err
		}
		set.Add(address)
	}

	return set.Sorted(), nil
}

func processTransfer(op Operation) (ProcessedOperation, error) {
	transfer := op.TransferAsset.Body.Transfer

	from, err := addresses(transfer.Inputs)
	if err != nil {
		return ProcessedOperation{}, fmt.Errorf("transfer input: %w", err)
	}

	to, err := addresses(transfer.Outputs)
	if err != nil {
		return ProcessedOperation{}, fmt.Errorf("transfer output: %w", err)
	}

	return ProcessedOperation{
		Kind:     KindTransferAsset,
		From:     from,
		To:       to,
		Original: op,
	}, nil
}
