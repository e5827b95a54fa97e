package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
	"slices"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainSelector is a unique identifier for a chain.
//
// These values are defined in the chain-selectors dependency.
// https://github.com/smartcontractkit/chain-selectors
type ChainSelector uint64

var (
	// ErrChainFamilyNotFound is returned when the chain family is not found for a selector
	ErrChainFamilyNotFound = errors.New("chain family not found")

	// ErrUnsupportedChainFamily is returned when the chain family is not supported by the scripts
	ErrUnsupportedChainFamily = errors.New("unsupported chain family")
)

// supportedFamilies is a list of chain families the proxy scripts can talk to
var supportedFamilies = []string{
	chainsel.FamilyEVM,
}

// GetChainSelectorFamily returns the family of the chain selector.
func GetChainSelectorFamily(sel ChainSelector) (string, error) {
	family, err := chainsel.GetSelectorFamily(uint64(sel))
	if err != nil {
		return "", fmt.Errorf("%w for selector %d", ErrChainFamilyNotFound, sel)
	}

	if !slices.Contains(supportedFamilies, family) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedChainFamily, family)
	}

	return family, nil
}

// EVMChainID returns the EVM chain id registered for the selector.
func (s ChainSelector) EVMChainID() (uint64, error) {
	if _, err := GetChainSelectorFamily(s); err != nil {
		return 0, err
	}

	chain, exists := chainsel.ChainBySelector(uint64(s))
	if !exists {
		return 0, fmt.Errorf("%w for selector %d", ErrChainFamilyNotFound, s)
	}

	return chain.EvmChainID, nil
}

// Name returns the chain-selectors name of the chain, or the raw selector when unknown.
func (s ChainSelector) Name() string {
	if chain, exists := chainsel.ChainBySelector(uint64(s)); exists {
		return chain.Name
	}

	return fmt.Sprintf("%d", uint64(s))
}
