// Package ledgerapi implements the network queries of the SDK over the HTTP
// JSON API of a ledger node: the query, ledger and submission servers and the
// Tendermint RPC used as block explorer.
package ledgerapi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gabapcia/utxokit/internal/account"
	"github.com/gabapcia/utxokit/internal/asset"
	"github.com/gabapcia/utxokit/internal/fee"
	"github.com/gabapcia/utxokit/internal/pkg/transport/http"
	"github.com/gabapcia/utxokit/internal/transaction"
	"github.com/gabapcia/utxokit/internal/txbuild"
	"github.com/gabapcia/utxokit/internal/txprocessor"
	"github.com/gabapcia/utxokit/internal/utxo"
)

// Default ports of the ledger node servers.
const (
	DefaultQueryPort      = 8667
	DefaultLedgerPort     = 8668
	DefaultSubmissionPort = 8669
	DefaultExplorerPort   = 26657
	DefaultTxPageSize     = 10
)

type config struct {
	queryPort      int
	ledgerPort     int
	submissionPort int
	explorerPort   int
	txPageSize     int
}

// Option configures the client.
type Option func(*config)

// WithQueryPort sets the port of the query server.
func WithQueryPort(port int) Option {
	return func(c *config) { c.queryPort = port }
}

// WithLedgerPort sets the port of the ledger server.
func WithLedgerPort(port int) Option {
	return func(c *config) { c.ledgerPort = port }
}

// WithSubmissionPort sets the port of the submission server.
func WithSubmissionPort(port int) Option {
	return func(c *config) { c.submissionPort = port }
}

// WithExplorerPort sets the port of the Tendermint RPC.
func WithExplorerPort(port int) Option {
	return func(c *config) { c.explorerPort = port }
}

// WithTxPageSize sets how many transactions a tx list page holds.
func WithTxPageSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.txPageSize = size
		}
	}
}

// client talks to a ledger node.
type client struct {
	cfg  config
	host string
	conn *http.Client
}

var (
	_ utxo.Network        = (*client)(nil)
	_ fee.Network         = (*client)(nil)
	_ txbuild.Network     = (*client)(nil)
	_ asset.Network       = (*client)(nil)
	_ transaction.Network = (*client)(nil)
	_ txprocessor.Network = (*client)(nil)
	_ account.Network     = (*client)(nil)
)

// NewClient creates a client for the node at host, e.g. "https://prod-mainnet.prod.findora.org".
func NewClient(conn *http.Client, host string, opts ...Option) *client {
	cfg := config{
		queryPort:      DefaultQueryPort,
		ledgerPort:     DefaultLedgerPort,
		submissionPort: DefaultSubmissionPort,
		explorerPort:   DefaultExplorerPort,
		txPageSize:     DefaultTxPageSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		cfg:  cfg,
		host: strings.TrimRight(host, "/"),
		conn: conn,
	}
}

// endpoint joins the server at port with path and the escaped query.
func (c *client) endpoint(port int, path string, query url.Values) string {
	u := fmt.Sprintf("%s:%d/%s", c.host, port, path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *client) queryURL(path string) string {
	return c.endpoint(c.cfg.queryPort, path, nil)
}

func (c *client) ledgerURL(path string) string {
	return c.endpoint(c.cfg.ledgerPort, path, nil)
}

func (c *client) submissionURL(path string) string {
	return c.endpoint(c.cfg.submissionPort, path, nil)
}

func (c *client) explorerURL(path string, query url.Values) string {
	return c.endpoint(c.cfg.explorerPort, path, query)
}
