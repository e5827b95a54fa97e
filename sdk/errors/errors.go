package sdkerrors

import (
	"fmt"

	"github.com/smartcontractkit/proxy-scripts/types"
)

type InvalidChainIDError struct {
	ReceivedChainID types.ChainSelector
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain ID: %v", e.ReceivedChainID)
}

func NewInvalidChainIDError(receivedChainID types.ChainSelector) *InvalidChainIDError {
	return &InvalidChainIDError{ReceivedChainID: receivedChainID}
}

// ChainIDMismatchError is returned when the node serves a different chain than the selector names.
type ChainIDMismatchError struct {
	Selector      types.ChainSelector
	ExpectedID    uint64
	ProviderChain uint64
}

func (e *ChainIDMismatchError) Error() string {
	return fmt.Sprintf("chain ID mismatch: selector %d expects chain %d, provider serves chain %d",
		e.Selector, e.ExpectedID, e.ProviderChain)
}

func NewChainIDMismatchError(sel types.ChainSelector, expected, provider uint64) *ChainIDMismatchError {
	return &ChainIDMismatchError{Selector: sel, ExpectedID: expected, ProviderChain: provider}
}

// InvalidContractIDError is returned when a string does not decode into a contract address.
type InvalidContractIDError struct {
	Received string
	Reason   string
}

func (e *InvalidContractIDError) Error() string {
	return fmt.Sprintf("invalid contract id %q: %s", e.Received, e.Reason)
}

func NewInvalidContractIDError(received, reason string) *InvalidContractIDError {
	return &InvalidContractIDError{Received: received, Reason: reason}
}

// InvalidSigningKeyError is returned when the signing key is not a valid secp256k1 scalar.
// The key itself is never part of the message.
type InvalidSigningKeyError struct {
	Err error
}

func (e *InvalidSigningKeyError) Error() string {
	return fmt.Sprintf("invalid signing key: %v", e.Err)
}

func (e *InvalidSigningKeyError) Unwrap() error {
	return e.Err
}

func NewInvalidSigningKeyError(err error) *InvalidSigningKeyError {
	return &InvalidSigningKeyError{Err: err}
}

// ConnectionError is returned when the provider endpoint cannot be reached.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to provider %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(url string, err error) *ConnectionError {
	return &ConnectionError{URL: url, Err: err}
}
