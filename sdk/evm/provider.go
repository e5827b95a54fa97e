package evm

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/smartcontractkit/proxy-scripts/sdk"
	sdkerrors "github.com/smartcontractkit/proxy-scripts/sdk/errors"
	"github.com/smartcontractkit/proxy-scripts/types"
)

// Provider is a connection to an EVM node together with the chain it serves.
type Provider struct {
	backend Backend
	chainID *big.Int
	url     string
	close   func()
}

// NewProvider creates a Provider over an already connected backend.
func NewProvider(backend Backend, chainID *big.Int) *Provider {
	return &Provider{
		backend: backend,
		chainID: chainID,
		close:   func() {},
	}
}

// Connect dials the node at rawURL and fetches its chain id.
//
// A failure to dial or to read the chain id is returned as a ConnectionError.
func Connect(ctx context.Context, rawURL string) (*Provider, error) {
	url := NormalizeURL(rawURL)
	logger := sdk.LoggerFrom(ctx)

	logger.Debugw("Dialing provider", "url", url)
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, sdkerrors.NewConnectionError(url, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, sdkerrors.NewConnectionError(url, err)
	}
	logger.Debugw("Connected to provider", "url", url, "chainID", chainID)

	return &Provider{
		backend: client,
		chainID: chainID,
		url:     url,
		close:   client.Close,
	}, nil
}

// NormalizeURL adds an http scheme to bare host:port endpoints.
// IPC paths are returned unchanged.
func NormalizeURL(rawURL string) string {
	url := strings.TrimSpace(rawURL)
	if url == "" || strings.Contains(url, "://") || strings.HasPrefix(url, "/") || strings.HasSuffix(url, ".ipc") {
		return url
	}

	return "http://" + url
}

func (p *Provider) Backend() Backend {
	return p.backend
}

// ChainID returns a copy of the chain id reported by the node.
func (p *Provider) ChainID() *big.Int {
	return new(big.Int).Set(p.chainID)
}

func (p *Provider) URL() string {
	return p.url
}

// Close releases the underlying connection.
func (p *Provider) Close() {
	p.close()
}

// VerifyChainSelector checks that the node serves the chain named by the selector.
// A zero selector disables the check.
func (p *Provider) VerifyChainSelector(sel types.ChainSelector) error {
	if sel == 0 {
		return nil
	}

	expected, err := sel.EVMChainID()
	if err != nil {
		return sdkerrors.NewInvalidChainIDError(sel)
	}

	if !p.chainID.IsUint64() {
		return sdkerrors.NewInvalidChainIDError(sel)
	}

	if got := p.chainID.Uint64(); got != expected {
		return sdkerrors.NewChainIDMismatchError(sel, expected, got)
	}

	return nil
}
