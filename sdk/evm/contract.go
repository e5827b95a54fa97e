package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/proxy-scripts/sdk"
)

// ErrNoCode is returned when a view call comes back empty, usually because nothing is
// deployed at the proxy address.
var ErrNoCode = errors.New("no contract code at given address")

// BoundProxy issues calls to a proxy contract, encoding and decoding them with the ABI of
// the target the proxy forwards to.
//
// Every call carries an EIP-2930 access list naming the proxy and the contracts declared
// with WithContractIDs.
type BoundProxy struct {
	address      common.Address
	abi          *abi.ABI
	backend      Backend
	chainID      *big.Int
	auth         *bind.TransactOpts
	contractIDs  []common.Address
	pollInterval time.Duration
}

// NewBoundProxy binds the proxy at id to the wallet that signs its transactions.
func NewBoundProxy(id ContractID, contractABI *abi.ABI, wallet *Wallet) *BoundProxy {
	return &BoundProxy{
		address:      id.Address(),
		abi:          contractABI,
		backend:      wallet.Provider().Backend(),
		chainID:      wallet.Provider().ChainID(),
		auth:         wallet.TransactOpts(),
		pollInterval: DefaultPollInterval,
	}
}

// WithContractIDs returns a copy of the proxy that declares ids as touched by its calls.
func (c *BoundProxy) WithContractIDs(ids ...ContractID) *BoundProxy {
	cp := *c
	cp.contractIDs = make([]common.Address, 0, len(c.contractIDs)+len(ids))
	cp.contractIDs = append(cp.contractIDs, c.contractIDs...)
	for _, id := range ids {
		cp.contractIDs = append(cp.contractIDs, id.Address())
	}

	return &cp
}

// WithPollInterval returns a copy of the proxy polling for receipts at the given interval.
func (c *BoundProxy) WithPollInterval(interval time.Duration) *BoundProxy {
	cp := *c
	cp.pollInterval = interval

	return &cp
}

// Address returns the proxy address.
func (c *BoundProxy) Address() common.Address {
	return c.address
}

// AccessList returns the proxy followed by the declared contracts, without duplicates.
func (c *BoundProxy) AccessList() gethtypes.AccessList {
	seen := make(map[common.Address]struct{}, len(c.contractIDs)+1)
	list := make(gethtypes.AccessList, 0, len(c.contractIDs)+1)
	for _, addr := range append([]common.Address{c.address}, c.contractIDs...) {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		list = append(list, gethtypes.AccessTuple{Address: addr, StorageKeys: []common.Hash{}})
	}

	return list
}

// Call invokes a view method and returns its unpacked results.
func (c *BoundProxy) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	output, err := c.backend.CallContract(ctx, c.callMsg(input), nil)
	if err != nil {
		return nil, BuildExecutionError(err, method, nil, c.abi)
	}
	if len(output) == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrNoCode)
	}

	results, err := c.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}

	return results, nil
}

// Transact signs and sends a transaction invoking method, then waits until it is mined.
// A mined transaction with a failed status is returned as an ExecutionError.
func (c *BoundProxy) Transact(ctx context.Context, method string, args ...any) (*gethtypes.Receipt, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	tx, err := c.buildTransaction(ctx, method, input)
	if err != nil {
		return nil, err
	}

	signed, err := c.auth.Signer(c.auth.From, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s transaction: %w", method, err)
	}

	logger := sdk.LoggerFrom(ctx)
	if err = c.backend.SendTransaction(ctx, signed); err != nil {
		return nil, BuildExecutionError(err, method, signed, c.abi)
	}
	logger.Debugw("Transaction sent", "method", method, "hash", signed.Hash().Hex())

	receipt, err := WaitMined(ctx, c.backend, signed.Hash(), c.pollInterval)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s transaction %s: %w", method, signed.Hash().Hex(), err)
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return nil, &ExecutionError{
			Method:        method,
			Transaction:   signed,
			OriginalError: ErrTransactionReverted,
		}
	}
	logger.Debugw("Transaction mined", "method", method, "hash", signed.Hash().Hex(), "block", receipt.BlockNumber)

	return receipt, nil
}

// buildTransaction prices an unsigned transaction. Chains reporting a base fee get a
// dynamic fee transaction, the others a legacy priced access list transaction.
func (c *BoundProxy) buildTransaction(ctx context.Context, method string, input []byte) (*gethtypes.Transaction, error) {
	nonce, err := c.backend.PendingNonceAt(ctx, c.auth.From)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce for %s: %w", c.auth.From.Hex(), err)
	}

	head, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}

	gasLimit, err := c.backend.EstimateGas(ctx, c.callMsg(input))
	if err != nil {
		return nil, BuildExecutionError(err, method, nil, c.abi)
	}

	to := c.address
	if head.BaseFee != nil {
		tip, tipErr := c.backend.SuggestGasTipCap(ctx)
		if tipErr != nil {
			return nil, fmt.Errorf("failed to suggest gas tip cap: %w", tipErr)
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(baseFeeMultiplier)))

		return gethtypes.NewTx(&gethtypes.DynamicFeeTx{
			ChainID:    c.chainID,
			Nonce:      nonce,
			GasTipCap:  tip,
			GasFeeCap:  feeCap,
			Gas:        gasLimit,
			To:         &to,
			Value:      big.NewInt(0),
			Data:       input,
			AccessList: c.AccessList(),
		}), nil
	}

	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}

	return gethtypes.NewTx(&gethtypes.AccessListTx{
		ChainID:    c.chainID,
		Nonce:      nonce,
		GasPrice:   gasPrice,
		Gas:        gasLimit,
		To:         &to,
		Value:      big.NewInt(0),
		Data:       input,
		AccessList: c.AccessList(),
	}), nil
}

func (c *BoundProxy) callMsg(input []byte) ethereum.CallMsg {
	to := c.address

	return ethereum.CallMsg{
		From:       c.auth.From,
		To:         &to,
		Data:       input,
		AccessList: c.AccessList(),
	}
}

// WaitMined polls for the receipt of txHash until it is available or ctx is done.
func WaitMined(ctx context.Context, b Backend, txHash common.Hash, interval time.Duration) (*gethtypes.Receipt, error) {
	queryTicker := time.NewTicker(interval)
	defer queryTicker.Stop()

	logger := sdk.LoggerFrom(ctx)
	for {
		receipt, err := b.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}

		if errors.Is(err, ethereum.NotFound) {
			logger.Debugw("Transaction not yet mined", "hash", txHash.Hex())
		} else {
			logger.Warnw("Receipt retrieval failed", "hash", txHash.Hex(), "err", err)
		}

		// Wait for the next round.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-queryTicker.C:
		}
	}
}
