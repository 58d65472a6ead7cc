package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/utxokit/internal/asset"
	"github.com/gabapcia/utxokit/internal/ledger"
	"github.com/gabapcia/utxokit/internal/pkg/amount"

	"github.com/urfave/cli/v3"
)

func waitFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "wait",
		Usage: "Wait until the transaction is committed or rejected",
	}
}

func blindFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "blind-amount", Usage: "Hide the amount"},
		&cli.BoolFlag{Name: "blind-type", Usage: "Hide the asset type"},
	}
}

func blindRules(c *cli.Command) asset.BlindRules {
	return asset.BlindRules{
		BlindAmount: c.Bool("blind-amount"),
		BlindType:   c.Bool("blind-type"),
	}
}

// submitted prints the handle and, with --wait, the final status.
func submitted(ctx context.Context, svc Services, c *cli.Command, handle string) error {
	if !c.Bool("wait") {
		_, err := fmt.Fprintln(output(c), handle)
		return err
	}

	status, err := svc.Statuses.WaitForStatus(ctx, handle)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", handle, err)
	}

	return printJSON(c, map[string]any{"handle": handle, "status": status})
}

// sendCommand transfers an asset to an address.
//
// Usage example:
//
//	utxokit send --private-key ... --to fra1... --amount 1.5
func sendCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Send an asset to an address.",
		Usage:       "Builds, signs and submits a transfer. Fees are paid in FRA.",
		Flags: append([]cli.Flag{
			privateKeyFlag(),
			waitFlag(),
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Recipient address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Amount in display units, e.g. 1.5",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "asset",
				Usage: "Asset code (defaults to FRA)",
			},
		}, blindFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			w, err := wallet(ctx, svc, c)
			if err != nil {
				return err
			}

			code, err := assetCode(ctx, svc, c)
			if err != nil {
				return err
			}

			tb, err := svc.Transactions.SendToAddress(ctx, w, c.String("to"), c.String("amount"), code, blindRules(c))
			if err != nil {
				return err
			}

			handle, err := svc.Transactions.Submit(ctx, tb)
			if err != nil {
				return err
			}

			return submitted(ctx, svc, c, handle)
		},
	}
}

// defineAssetCommand creates a new asset. Without --code a random code is used.
func defineAssetCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "define-asset",
		Description: "Define a new asset owned by the wallet.",
		Usage:       "Submits an asset definition and prints the asset code and handle.",
		Flags: []cli.Flag{
			privateKeyFlag(),
			waitFlag(),
			&cli.StringFlag{Name: "code", Usage: "Asset code (random when empty)"},
			&cli.StringFlag{Name: "memo", Usage: "Asset memo", Value: asset.DefaultMemo},
			&cli.UintFlag{Name: "decimals", Usage: "Decimals of one display unit", Value: asset.DefaultDecimals},
			&cli.StringFlag{Name: "max-units", Usage: "Issuance cap in base units"},
			&cli.BoolFlag{Name: "transferable", Usage: "Allow transfers", Value: true},
			&cli.BoolFlag{Name: "updatable", Usage: "Allow memo updates"},
			&cli.BoolFlag{Name: "traceable", Usage: "Attach a tracing policy"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			w, err := wallet(ctx, svc, c)
			if err != nil {
				return err
			}

			code := c.String("code")
			if code == "" {
				if code, err = svc.Assets.RandomAssetCode(ctx); err != nil {
					return err
				}
			}

			decimals := c.Uint("decimals")
			if decimals > 255 {
				return fmt.Errorf("decimals out of range: %d", decimals)
			}

			rules := ledger.AssetRules{
				Transferable: c.Bool("transferable"),
				Updatable:    c.Bool("updatable"),
				Decimals:     uint8(decimals),
				Traceable:    c.Bool("traceable"),
				MaxUnits:     c.String("max-units"),
			}

			handle, err := svc.Assets.DefineAsset(ctx, w, code, c.String("memo"), &rules)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(output(c), code); err != nil {
				return err
			}
			return submitted(ctx, svc, c, handle)
		},
	}
}

// issueAssetCommand issues units of an asset the wallet defined.
func issueAssetCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "issue-asset",
		Description: "Issue units of an asset defined by the wallet.",
		Usage:       "Submits an issuance and prints its handle.",
		Flags: append([]cli.Flag{
			privateKeyFlag(),
			waitFlag(),
			&cli.StringFlag{
				Name:     "code",
				Usage:    "Asset code",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Amount in display units",
				Required: true,
			},
		}, blindFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			w, err := wallet(ctx, svc, c)
			if err != nil {
				return err
			}

			handle, err := svc.Assets.IssueAsset(ctx, w, c.String("code"), c.String("amount"), blindRules(c))
			if err != nil {
				return err
			}

			return submitted(ctx, svc, c, handle)
		},
	}
}

func undelegateCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "undelegate",
		Description: "Withdraw the wallet's delegation.",
		Usage:       "Submits an undelegation and prints its handle.",
		Flags:       []cli.Flag{privateKeyFlag(), waitFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			w, err := wallet(ctx, svc, c)
			if err != nil {
				return err
			}

			handle, err := svc.Staking.UnDelegate(ctx, w)
			if err != nil {
				return err
			}

			return submitted(ctx, svc, c, handle)
		},
	}
}

// claimCommand claims staking rewards. The amount is in FRA display units.
func claimCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "claim",
		Description: "Claim staking rewards.",
		Usage:       "Submits a claim for the given FRA amount and prints its handle.",
		Flags: []cli.Flag{
			privateKeyFlag(),
			waitFlag(),
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Amount in FRA",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			w, err := wallet(ctx, svc, c)
			if err != nil {
				return err
			}

			units, err := amount.ToBaseUnits(c.String("amount"), asset.DefaultDecimals)
			if err != nil {
				return fmt.Errorf("invalid claim amount: %w", err)
			}

			handle, err := svc.Staking.Claim(ctx, w, units)
			if err != nil {
				return err
			}

			return submitted(ctx, svc, c, handle)
		},
	}
}
