package evm

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	sdkerrors "github.com/smartcontractkit/proxy-scripts/sdk/errors"
)

// Wallet is a signing identity bound to a provider.
type Wallet struct {
	address  common.Address
	provider *Provider
	auth     *bind.TransactOpts
}

// ParseSigningKey decodes a hex encoded secp256k1 private key. The 0x prefix is optional.
func ParseSigningKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key := strings.TrimSpace(hexKey)
	if has0xPrefix(key) {
		key = key[2:]
	}

	pk, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, sdkerrors.NewInvalidSigningKeyError(err)
	}

	return pk, nil
}

// NewWallet creates a wallet signing for the provider's chain.
func NewWallet(pk *ecdsa.PrivateKey, provider *Provider) (*Wallet, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(pk, provider.ChainID())
	if err != nil {
		return nil, err
	}

	return &Wallet{
		address:  crypto.PubkeyToAddress(pk.PublicKey),
		provider: provider,
		auth:     auth,
	}, nil
}

// NewWalletFromPrivateKey decodes the key and creates a wallet for the provider.
func NewWalletFromPrivateKey(hexKey string, provider *Provider) (*Wallet, error) {
	pk, err := ParseSigningKey(hexKey)
	if err != nil {
		return nil, err
	}

	return NewWallet(pk, provider)
}

// Address returns the address derived from the signing key.
func (w *Wallet) Address() common.Address {
	return w.address
}

func (w *Wallet) Provider() *Provider {
	return w.provider
}

// TransactOpts returns the keyed transactor of the wallet.
func (w *Wallet) TransactOpts() *bind.TransactOpts {
	return w.auth
}
