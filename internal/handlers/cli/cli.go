package cli

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"os"

	"github.com/gabapcia/utxokit/internal/asset"
	"github.com/gabapcia/utxokit/internal/keypair"
	"github.com/gabapcia/utxokit/internal/ledger"
	"github.com/gabapcia/utxokit/internal/transaction"
	"github.com/gabapcia/utxokit/internal/txbuild"
	"github.com/gabapcia/utxokit/internal/txprocessor"
	"github.com/gabapcia/utxokit/internal/utxo"

	"github.com/urfave/cli/v3"
)

// PrivateKeyEnv is read when --private-key is not given.
const PrivateKeyEnv = "UTXOKIT_PRIVATE_KEY"

type (
	// Accounts reads wallet holdings.
	Accounts interface {
		GetBalance(ctx context.Context, wallet keypair.WalletKeyPair, assetCode string) (*big.Int, error)
		OwnedUtxos(ctx context.Context, wallet keypair.WalletKeyPair) ([]utxo.DecryptedItem, error)
	}

	// Assets defines, issues and describes assets.
	Assets interface {
		FraAssetCode(ctx context.Context) (string, error)
		RandomAssetCode(ctx context.Context) (string, error)
		GetAssetDetails(ctx context.Context, code string) (asset.Details, error)
		DefineAsset(ctx context.Context, wallet keypair.WalletKeyPair, name, memo string, rules *ledger.AssetRules) (string, error)
		IssueAsset(ctx context.Context, wallet keypair.WalletKeyPair, name, value string, blind asset.BlindRules) (string, error)
	}

	// Transactions sends assets and lists past transactions.
	Transactions interface {
		SendToAddress(ctx context.Context, wallet keypair.WalletKeyPair, address, value, assetCode string, blind asset.BlindRules) (ledger.TransactionBuilder, error)
		Submit(ctx context.Context, tb ledger.TransactionBuilder) (string, error)
		GetTxList(ctx context.Context, address string, direction transaction.Direction, page int) (transaction.TxList, error)
		GetTransactionDetails(ctx context.Context, hash string) (txprocessor.ProcessedTxInfo, error)
	}

	// Staking undelegates and claims rewards.
	Staking interface {
		UnDelegate(ctx context.Context, wallet keypair.WalletKeyPair) (string, error)
		Claim(ctx context.Context, wallet keypair.WalletKeyPair, amount *big.Int) (string, error)
	}

	// Statuses follows a submitted transaction.
	Statuses interface {
		WaitForStatus(ctx context.Context, handle string) (txbuild.TransactionStatus, error)
	}
)

// Services groups everything the commands call.
type Services struct {
	Keys         ledger.KeyManager
	Accounts     Accounts
	Assets       Assets
	Transactions Transactions
	Staking      Staking
	Statuses     Statuses
}

// Run initializes and executes the utxokit CLI application with os.Args.
func Run(ctx context.Context, svc Services) error {
	return newApp(svc).Run(ctx, os.Args)
}

func newApp(svc Services) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "utxokit",
		Description:           "Command-line wallet for a UTXO ledger: balances, transfers, assets and staking.",
		Usage:                 "utxokit [command] [flags]",
		Commands: []*cli.Command{
			balanceCommand(svc),
			utxosCommand(svc),
			txsCommand(svc),
			txCommand(svc),
			statusCommand(svc),
			sendCommand(svc),
			defineAssetCommand(svc),
			issueAssetCommand(svc),
			undelegateCommand(svc),
			claimCommand(svc),
		},
	}
}

func privateKeyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "private-key",
		Usage:    "Wallet private key (falls back to " + PrivateKeyEnv + ")",
		Sources:  cli.EnvVars(PrivateKeyEnv),
		Required: true,
	}
}

func wallet(ctx context.Context, svc Services, c *cli.Command) (keypair.WalletKeyPair, error) {
	return keypair.Restore(ctx, svc.Keys, c.String("private-key"))
}

// assetCode returns the --asset flag, or the FRA code when it is empty.
func assetCode(ctx context.Context, svc Services, c *cli.Command) (string, error) {
	if code := c.String("asset"); code != "" {
		return code, nil
	}
	return svc.Assets.FraAssetCode(ctx)
}

func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func printJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(output(c))
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
