package utxo

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/utxokit/internal/ledger"
)

// AddUtxoInputs implements Service.
func (s *service) AddUtxoInputs(ctx context.Context, selection []OutputItem) (InputsInfo, error) {
	info := InputsInfo{
		InputParametersList: make([]InputParameter, 0, len(selection)),
		InputAmount:         new(big.Int),
	}

	for _, item := range selection {
		record, err := s.ledger.ParseAssetRecord(ctx, item.Utxo)
		if err != nil {
			return InputsInfo{}, fmt.Errorf("could not parse asset record of sid %d: %w", item.Sid, err)
		}

		info.InputParametersList = append(info.InputParametersList, InputParameter{
			TxoRef:      ledger.AbsoluteTxoRef(item.Sid),
			AssetRecord: record,
			OwnerMemo:   cloneRaw(item.OwnerMemo),
			Amount:      cloneInt(item.Amount),
			MemoData:    cloneRaw(item.MemoData),
		})
		info.InputAmount.Add(info.InputAmount, cloneInt(item.OriginAmount))
	}

	return info, nil
}
