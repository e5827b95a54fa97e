package evm

import (
	"context"

	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/proxy-scripts/sdk"
	"github.com/smartcontractkit/proxy-scripts/sdk/evm/bindings"
	"github.com/smartcontractkit/proxy-scripts/types"
)

var (
	_ sdk.PausableTarget            = (*SimpleTargetContract)(nil)
	_ sdk.ConfigurableReader[uint8] = (*SimpleTargetContract)(nil)
)

// SimpleTargetContract is a handle on a proxy forwarding to a SimpleTargetContract implementation.
type SimpleTargetContract struct {
	*BoundProxy
}

// NewSimpleTargetContract binds the proxy at proxyID with the SimpleTargetContract ABI.
func NewSimpleTargetContract(proxyID ContractID, wallet *Wallet) (*SimpleTargetContract, error) {
	parsed, err := bindings.SimpleTargetContractMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return &SimpleTargetContract{BoundProxy: NewBoundProxy(proxyID, parsed, wallet)}, nil
}

// WithContractIDs returns a copy of the handle declaring ids as touched by its calls.
func (c *SimpleTargetContract) WithContractIDs(ids ...ContractID) *SimpleTargetContract {
	return &SimpleTargetContract{BoundProxy: c.BoundProxy.WithContractIDs(ids...)}
}

// GetVersion returns the version of the target implementation.
func (c *SimpleTargetContract) GetVersion(ctx context.Context) (uint64, error) {
	out, err := c.Call(ctx, "getVersion")
	if err != nil {
		return 0, err
	}

	return unpackSingle[uint64]("getVersion", out)
}

// IsPaused reports whether the target is paused.
func (c *SimpleTargetContract) IsPaused(ctx context.Context) (bool, error) {
	out, err := c.Call(ctx, "isPaused")
	if err != nil {
		return false, err
	}

	return unpackSingle[bool]("isPaused", out)
}

// GetConfigurable returns the byte configurable of the target.
func (c *SimpleTargetContract) GetConfigurable(ctx context.Context) (uint8, error) {
	out, err := c.Call(ctx, "getConfigurableByte")
	if err != nil {
		return 0, err
	}

	return unpackSingle[uint8]("getConfigurableByte", out)
}

// Pause pauses the target.
func (c *SimpleTargetContract) Pause(ctx context.Context) (types.TransactionResult, error) {
	return c.transact(ctx, "pause")
}

// Unpause unpauses the target.
func (c *SimpleTargetContract) Unpause(ctx context.Context) (types.TransactionResult, error) {
	return c.transact(ctx, "unpause")
}

func (c *SimpleTargetContract) transact(ctx context.Context, method string) (types.TransactionResult, error) {
	receipt, err := c.Transact(ctx, method)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return types.NewTransactionResult(receipt.TxHash.Hex(), chainsel.FamilyEVM, receipt), nil
}
