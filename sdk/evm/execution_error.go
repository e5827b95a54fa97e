package evm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// ErrTransactionReverted is the cause of an ExecutionError built from a failed receipt.
	ErrTransactionReverted = errors.New("transaction reverted")

	// hexPattern matches "0x" followed by one or more hex characters
	hexPattern = regexp.MustCompile(`0x[0-9a-fA-F]+`)
)

const selectorSize = 4

// CustomErrorData contains the error selector and its arguments separately.
type CustomErrorData struct {
	Selector [selectorSize]byte // 4-byte error selector
	Data     []byte             // Error arguments (ABI-encoded)
}

// Combined returns the full revert data (selector + data) as a byte slice.
func (c *CustomErrorData) Combined() []byte {
	if c == nil {
		return nil
	}

	return append(c.Selector[:], c.Data...)
}

// HexSelector returns the hex-encoded selector (e.g., "0xd93c0665").
func (c *CustomErrorData) HexSelector() string {
	if c == nil {
		return ""
	}

	return hexutil.Encode(c.Selector[:])
}

// ExecutionError represents a call or transaction the contract rejected.
type ExecutionError struct {
	// Method is the ABI method that was invoked
	Method string
	// Transaction is the signed transaction, nil for view calls
	Transaction *gethtypes.Transaction
	// RawRevertReason contains the error selector and raw data from the contract
	RawRevertReason *CustomErrorData
	// DecodedRevertReason is the human-readable revert reason, if it could be decoded
	DecodedRevertReason string
	// OriginalError is the error returned by the node
	OriginalError error
}

func (e *ExecutionError) Error() string {
	if e.DecodedRevertReason != "" {
		return fmt.Sprintf("%s reverted: %s", e.Method, e.DecodedRevertReason)
	}
	if data := e.RawRevertReason.Combined(); len(data) > 0 {
		return fmt.Sprintf("%s reverted: raw revert data %s", e.Method, hexutil.Encode(data))
	}

	return fmt.Sprintf("%s failed: %v", e.Method, e.OriginalError)
}

func (e *ExecutionError) Unwrap() error {
	return e.OriginalError
}

// BuildExecutionError wraps err with the revert reason decoded against the contract ABI.
func BuildExecutionError(err error, method string, tx *gethtypes.Transaction, contractABI *abi.ABI) *ExecutionError {
	if err == nil {
		return nil
	}

	execErr := &ExecutionError{
		Method:        method,
		Transaction:   tx,
		OriginalError: err,
	}

	data := extractRevertData(err)
	if len(data) == 0 {
		return execErr
	}

	raw := &CustomErrorData{}
	if len(data) >= selectorSize {
		copy(raw.Selector[:], data[:selectorSize])
		raw.Data = data[selectorSize:]
	} else {
		raw.Data = data
	}
	execErr.RawRevertReason = raw
	execErr.DecodedRevertReason = decodeRevertData(data, contractABI)

	return execErr
}

// extractRevertData returns the revert payload carried by a JSON-RPC error.
func extractRevertData(err error) []byte {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if s, ok := dataErr.ErrorData().(string); ok {
			if data, decodeErr := hexutil.Decode(s); decodeErr == nil {
				return data
			}
		}
	}

	// some nodes only embed the payload in the message
	msg := err.Error()
	if !strings.Contains(msg, "revert") {
		return nil
	}
	if hexStr := hexPattern.FindString(msg); hexStr != "" {
		return common.FromHex(hexStr)
	}

	return nil
}

// decodeRevertData decodes Error(string), Panic(uint256) and the custom errors declared in the ABI.
func decodeRevertData(data []byte, contractABI *abi.ABI) string {
	if reason, err := abi.UnpackRevert(data); err == nil {
		return reason
	}

	if contractABI == nil || len(data) < selectorSize {
		return ""
	}

	for name, abiErr := range contractABI.Errors {
		if string(abiErr.ID[:selectorSize]) != string(data[:selectorSize]) {
			continue
		}

		args, err := abiErr.Inputs.Unpack(data[selectorSize:])
		if err != nil {
			return name
		}

		formatted := make([]string, 0, len(args))
		for _, arg := range args {
			formatted = append(formatted, fmt.Sprintf("%v", arg))
		}

		return fmt.Sprintf("%s(%s)", name, strings.Join(formatted, ", "))
	}

	return ""
}
