package evm

import (
	"context"

	"github.com/smartcontractkit/proxy-scripts/sdk"
	"github.com/smartcontractkit/proxy-scripts/sdk/evm/bindings"
)

var _ sdk.ConfigurableReader[bool] = (*LargeTargetContract)(nil)

// LargeTargetContract is a handle on a proxy forwarding to a LargeTargetContract implementation.
type LargeTargetContract struct {
	*BoundProxy
}

// NewLargeTargetContract binds the proxy at proxyID with the LargeTargetContract ABI.
func NewLargeTargetContract(proxyID ContractID, wallet *Wallet) (*LargeTargetContract, error) {
	parsed, err := bindings.LargeTargetContractMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return &LargeTargetContract{BoundProxy: NewBoundProxy(proxyID, parsed, wallet)}, nil
}

// GetConfigurable returns the boolean configurable of the target.
func (c *LargeTargetContract) GetConfigurable(ctx context.Context) (bool, error) {
	out, err := c.Call(ctx, "getConfigurableBool")
	if err != nil {
		return false, err
	}

	return unpackSingle[bool]("getConfigurableBool", out)
}
