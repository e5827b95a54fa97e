package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

func TestGetChainSelectorFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    ChainSelector
		want    string
		wantErr string
	}{
		{
			name: "success: evm",
			give: ChainSelector(chainsel.ETHEREUM_TESTNET_SEPOLIA.Selector),
			want: chainsel.FamilyEVM,
		},
		{
			name:    "failure: solana is not supported",
			give:    ChainSelector(chainsel.SOLANA_DEVNET.Selector),
			wantErr: "unsupported chain family: solana",
		},
		{
			name:    "invalid chain selector",
			give:    0,
			wantErr: "chain family not found for selector 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := GetChainSelectorFamily(tt.give)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestChainSelector_EVMChainID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sel     ChainSelector
		want    uint64
		wantErr error
	}{
		{name: "geth testnet", sel: ChainSelector(chainsel.GETH_TESTNET.Selector), want: 1337},
		{name: "sepolia", sel: ChainSelector(chainsel.ETHEREUM_TESTNET_SEPOLIA.Selector), want: 11155111},
		{name: "solana", sel: ChainSelector(chainsel.SOLANA_DEVNET.Selector), wantErr: ErrUnsupportedChainFamily},
		{name: "unknown", sel: 0, wantErr: ErrChainFamilyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.sel.EVMChainID()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChainSelector_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, chainsel.ETHEREUM_TESTNET_SEPOLIA.Name, ChainSelector(chainsel.ETHEREUM_TESTNET_SEPOLIA.Selector).Name())
	assert.Equal(t, "42", ChainSelector(42).Name())
}
