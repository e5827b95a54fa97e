package testutils

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Note: should only be used for testing purposes
type ECDSASigner struct {
	Key *ecdsa.PrivateKey
}

func NewECDSASigner() *ECDSASigner {
	key, _ := crypto.GenerateKey()
	return &ECDSASigner{Key: key}
}

func (s *ECDSASigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.Key.PublicKey)
}

// HexKey returns the private key hex encoded without the 0x prefix, as passed to --signing-key.
func (s *ECDSASigner) HexKey() string {
	return hexutil.Encode(crypto.FromECDSA(s.Key))[2:]
}

// RandomContractID returns the checksummed form of a random address.
func RandomContractID() string {
	return NewECDSASigner().Address().Hex()
}
