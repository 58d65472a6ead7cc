package utxo

import "math/big"

// GetSendUtxo picks outputs of asset code, in list order, until amount is
// covered. The last output picked may be consumed only in part: its Amount is
// what is still needed and its OriginAmount the full value.
//
// Outputs with a nil or non-positive amount are skipped. The walk stops before
// looking at another output once nothing is left to cover, so a zero amount
// selects nothing. When the matching outputs cannot
// cover amount, all of them are returned fully consumed; checking that the
// selection is enough is up to the caller. list is not modified.
func GetSendUtxo(code string, amount *big.Int, list []DecryptedItem) []OutputItem {
	balance := cloneInt(amount)
	result := make([]OutputItem, 0)

	for _, item := range list {
		if item.Body.AssetType != code {
			continue
		}

		if item.Body.Amount == nil || item.Body.Amount.Sign() <= 0 {
			continue
		}

		if balance.Sign() <= 0 {
			break
		}

		value := cloneInt(item.Body.Amount)
		output := OutputItem{
			Sid:          item.Sid,
			Utxo:         cloneRaw(item.Utxo),
			OwnerMemo:    cloneRaw(item.OwnerMemo),
			OriginAmount: value,
			MemoData:     cloneRaw(item.MemoData),
		}

		if value.Cmp(balance) >= 0 {
			output.Amount = new(big.Int).Set(balance)
			result = append(result, output)
			break
		}

		output.Amount = new(big.Int).Set(value)
		result = append(result, output)
		balance.Sub(balance, value)
	}

	return result
}

// Total sums the Amount of every output.
func Total(outputs []OutputItem) *big.Int {
	total := new(big.Int)
	for _, o := range outputs {
		if o.Amount != nil {
			total.Add(total, o.Amount)
		}
	}
	return total
}
