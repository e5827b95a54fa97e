package evm

import (
	"bytes"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	sdkerrors "github.com/smartcontractkit/proxy-scripts/sdk/errors"
)

const (
	addressHexLength = common.AddressLength * 2
	wordHexLength    = common.HashLength * 2
	wordPadding      = common.HashLength - common.AddressLength
)

// ContractID identifies a deployed contract by its address.
type ContractID struct {
	address common.Address
}

// NewContractID wraps an already decoded address.
func NewContractID(address common.Address) ContractID {
	return ContractID{address: address}
}

// ParseContractID decodes a contract identifier.
//
// Accepted forms are a 0x-prefixed or bare 20-byte hex address (mixed case must carry
// a valid EIP-55 checksum) and the 32-byte ABI word form whose 12 leading bytes are zero.
func ParseContractID(s string) (ContractID, error) {
	digits := strings.TrimSpace(s)
	if has0xPrefix(digits) {
		digits = digits[2:]
	}

	if len(digits) != addressHexLength && len(digits) != wordHexLength {
		return ContractID{}, sdkerrors.NewInvalidContractIDError(s, "expected 40 or 64 hex digits")
	}

	raw, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return ContractID{}, sdkerrors.NewInvalidContractIDError(s, "invalid hex characters")
	}

	if len(raw) == common.HashLength {
		if !bytes.Equal(raw[:wordPadding], make([]byte, wordPadding)) {
			return ContractID{}, sdkerrors.NewInvalidContractIDError(s, "32-byte form must be left padded with zeros")
		}

		return ContractID{address: common.BytesToAddress(raw[wordPadding:])}, nil
	}

	if isMixedCase(digits) {
		mixed, err := common.NewMixedcaseAddressFromString("0x" + digits)
		if err != nil {
			return ContractID{}, sdkerrors.NewInvalidContractIDError(s, err.Error())
		}
		if !mixed.ValidChecksum() {
			return ContractID{}, sdkerrors.NewInvalidContractIDError(s, "invalid EIP-55 checksum")
		}
	}

	return ContractID{address: common.BytesToAddress(raw)}, nil
}

// Address returns the contract address.
func (i ContractID) Address() common.Address {
	return i.address
}

// String returns the checksummed address.
func (i ContractID) String() string {
	return i.address.Hex()
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isMixedCase(s string) bool {
	return strings.ToLower(s) != s && strings.ToUpper(s) != s
}
