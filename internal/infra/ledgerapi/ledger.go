package ledgerapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/gabapcia/utxokit/internal/asset"
	"github.com/gabapcia/utxokit/internal/txbuild"
)

// errMalformedStateCommitment is returned when global_state is not a
// [hash, height, ...] array.
var errMalformedStateCommitment = errors.New("malformed state commitment")

// assetTokenResponse is the body of asset_token.
type assetTokenResponse struct {
	Properties struct {
		Issuer struct {
			Key string `json:"key"`
		} `json:"issuer"`
		Memo       string           `json:"memo"`
		AssetRules asset.TokenRules `json:"asset_rules"`
	} `json:"properties"`
	Units uint64 `json:"units"`
}

func (r assetTokenResponse) toToken() asset.Token {
	return asset.Token{
		IssuerPublicKey: r.Properties.Issuer.Key,
		Memo:            r.Properties.Memo,
		Rules:           r.Properties.AssetRules,
		Units:           r.Units,
	}
}

// GetStateCommitment returns the latest state commitment. A null body is
// reported as txbuild.ErrMissingStateCommitment; height 0 is a valid genesis
// commitment.
func (c *client) GetStateCommitment(ctx context.Context) (txbuild.StateCommitment, error) {
	var parts []json.RawMessage
	if err := c.conn.GetJSON(ctx, c.ledgerURL("global_state"), &parts); err != nil {
		return txbuild.StateCommitment{}, fmt.Errorf("get global state: %w", err)
	}

	if parts == nil {
		return txbuild.StateCommitment{}, txbuild.ErrMissingStateCommitment
	}

	if len(parts) < 2 {
		return txbuild.StateCommitment{}, fmt.Errorf("%w: %d elements", errMalformedStateCommitment, len(parts))
	}

	var height uint64
	if err := json.Unmarshal(parts[1], &height); err != nil {
		return txbuild.StateCommitment{}, fmt.Errorf("%w: height: %w", errMalformedStateCommitment, err)
	}

	return txbuild.StateCommitment{Hash: parts[0], Height: height}, nil
}

// GetAssetToken returns the definition of the asset code.
func (c *client) GetAssetToken(ctx context.Context, code string) (asset.Token, error) {
	var res assetTokenResponse
	if err := c.conn.GetJSON(ctx, c.ledgerURL("asset_token/"+url.PathEscape(code)), &res); err != nil {
		return asset.Token{}, fmt.Errorf("get asset token: %w", err)
	}
	return res.toToken(), nil
}
