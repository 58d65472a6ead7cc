package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/utxokit/internal/pkg/amount"
	"github.com/gabapcia/utxokit/internal/transaction"

	"github.com/urfave/cli/v3"
)

// balanceCommand prints the balance of one asset in display units.
//
// Usage example:
//
//	utxokit balance --private-key ... --asset AAAA...
func balanceCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Show the balance of a wallet for one asset.",
		Usage:       "Prints the wallet balance in display units. Defaults to FRA.",
		Flags: []cli.Flag{
			privateKeyFlag(),
			&cli.StringFlag{
				Name:  "asset",
				Usage: "Asset code (defaults to FRA)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			w, err := wallet(ctx, svc, c)
			if err != nil {
				return err
			}

			code, err := assetCode(ctx, svc, c)
			if err != nil {
				return err
			}

			details, err := svc.Assets.GetAssetDetails(ctx, code)
			if err != nil {
				return err
			}

			balance, err := svc.Accounts.GetBalance(ctx, w, code)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(output(c), amount.FromBaseUnits(balance, details.Rules.Decimals))
			return err
		},
	}
}

// utxosCommand lists the decrypted outputs owned by a wallet.
func utxosCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "utxos",
		Description: "List the unspent outputs owned by a wallet.",
		Usage:       "Prints the decrypted UTXOs of the wallet as JSON.",
		Flags:       []cli.Flag{privateKeyFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			w, err := wallet(ctx, svc, c)
			if err != nil {
				return err
			}

			items, err := svc.Accounts.OwnedUtxos(ctx, w)
			if err != nil {
				return err
			}

			return printJSON(c, items)
		},
	}
}

// txsCommand lists the transactions sent or received by an address.
//
// Usage example:
//
//	utxokit txs --address fra1... --direction from --page 2
func txsCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "txs",
		Description: "List the transactions of an address.",
		Usage:       "Prints one page of decoded transactions as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "direction",
				Usage: "to (received) or from (sent)",
				Value: string(transaction.DirectionTo),
			},
			&cli.IntFlag{
				Name:  "page",
				Usage: "Page number, starting at 1",
				Value: 1,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			list, err := svc.Transactions.GetTxList(ctx, c.String("address"), transaction.Direction(c.String("direction")), int(c.Int("page")))
			if err != nil {
				return err
			}

			return printJSON(c, list)
		},
	}
}

// txCommand prints one decoded transaction.
func txCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "tx",
		Description: "Show a transaction by hash.",
		Usage:       "Prints the decoded transaction as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Transaction hash",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			tx, err := svc.Transactions.GetTransactionDetails(ctx, c.String("hash"))
			if err != nil {
				return err
			}

			return printJSON(c, tx)
		},
	}
}

// statusCommand waits for a submitted transaction to leave the pending state.
func statusCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Show the status of a submitted transaction.",
		Usage:       "Polls the submission server until the handle is committed or rejected.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "handle",
				Usage:    "Handle returned on submission",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			status, err := svc.Statuses.WaitForStatus(ctx, c.String("handle"))
			if err != nil {
				return err
			}

			return printJSON(c, status)
		},
	}
}
