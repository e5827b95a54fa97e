package evm_test

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/proxy-scripts/sdk/evm"
	evm_mocks "github.com/smartcontractkit/proxy-scripts/sdk/evm/mocks"
)

// touchesTarget matches a call message whose access list names the proxy and the target.
func touchesTarget() interface{} {
	return mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return len(msg.AccessList) == 2 &&
			msg.AccessList[0].Address == proxyAddr &&
			msg.AccessList[1].Address == targetAddr
	})
}

func newSimpleTarget(t *testing.T, backend *evm_mocks.Backend) *evm.SimpleTargetContract {
	t.Helper()

	wallet, _ := newTestWallet(t, backend)
	target, err := evm.NewSimpleTargetContract(evm.NewContractID(proxyAddr), wallet)
	require.NoError(t, err)

	return target.WithContractIDs(evm.NewContractID(targetAddr))
}

func TestSimpleTargetContract_GetVersion(t *testing.T) {
	t.Parallel()

	parsed := simpleABI(t)
	backend := evm_mocks.NewBackend(t)
	backend.EXPECT().CallContract(mock.Anything, touchesTarget(), mock.Anything).
		Return(packOutput(t, parsed, "getVersion", uint64(3)), nil)

	version, err := newSimpleTarget(t, backend).GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), version)
}

func TestSimpleTargetContract_IsPaused(t *testing.T) {
	t.Parallel()

	parsed := simpleABI(t)

	tests := []struct {
		name    string
		paused  bool
		callErr error
		wantErr string
	}{
		{name: "paused", paused: true},
		{name: "not paused", paused: false},
		{name: "call fails", callErr: context.Canceled, wantErr: "isPaused failed: context canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := evm_mocks.NewBackend(t)
			if tt.callErr != nil {
				backend.EXPECT().CallContract(mock.Anything, callsMethod(parsed, "isPaused"), mock.Anything).
					Return(nil, tt.callErr)
			} else {
				backend.EXPECT().CallContract(mock.Anything, callsMethod(parsed, "isPaused"), mock.Anything).
					Return(packOutput(t, parsed, "isPaused", tt.paused), nil)
			}

			paused, err := newSimpleTarget(t, backend).IsPaused(context.Background())
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.paused, paused)
		})
	}
}

func TestSimpleTargetContract_GetConfigurable(t *testing.T) {
	t.Parallel()

	parsed := simpleABI(t)
	backend := evm_mocks.NewBackend(t)
	backend.EXPECT().CallContract(mock.Anything, callsMethod(parsed, "getConfigurableByte"), mock.Anything).
		Return(packOutput(t, parsed, "getConfigurableByte", uint8(8)), nil)

	value, err := newSimpleTarget(t, backend).GetConfigurable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint8(8), value)
}

func TestSimpleTargetContract_PauseUnpause(t *testing.T) {
	t.Parallel()

	parsed := simpleABI(t)

	tests := []struct {
		name   string
		method string
		call   func(ctx context.Context, c *evm.SimpleTargetContract) (string, string, error)
	}{
		{
			name:   "pause",
			method: "pause",
			call: func(ctx context.Context, c *evm.SimpleTargetContract) (string, string, error) {
				res, err := c.Pause(ctx)
				return res.Hash, res.ChainFamily, err
			},
		},
		{
			name:   "unpause",
			method: "unpause",
			call: func(ctx context.Context, c *evm.SimpleTargetContract) (string, string, error) {
				res, err := c.Unpause(ctx)
				return res.Hash, res.ChainFamily, err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := evm_mocks.NewBackend(t)
			backend.EXPECT().PendingNonceAt(mock.Anything, mock.Anything).Return(uint64(0), nil)
			backend.EXPECT().HeaderByNumber(mock.Anything, mock.Anything).Return(&gethtypes.Header{}, nil)
			backend.EXPECT().EstimateGas(mock.Anything, mock.MatchedBy(func(msg ethereum.CallMsg) bool {
				return len(msg.AccessList) == 2 && string(msg.Data[:4]) == string(parsed.Methods[tt.method].ID)
			})).Return(uint64(30000), nil)
			backend.EXPECT().SuggestGasPrice(mock.Anything).Return(common.Big1, nil)
			backend.EXPECT().SendTransaction(mock.Anything, mock.Anything).Return(nil)
			backend.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, h common.Hash) (*gethtypes.Receipt, error) {
					return &gethtypes.Receipt{Status: gethtypes.ReceiptStatusSuccessful, TxHash: h}, nil
				})

			target := newSimpleTarget(t, backend)
			target.BoundProxy = target.WithPollInterval(time.Millisecond)

			hash, family, err := tt.call(context.Background(), target)
			require.NoError(t, err)
			assert.Equal(t, chainsel.FamilyEVM, family)
			assert.Len(t, hash, 66)
		})
	}
}
