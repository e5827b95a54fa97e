package evm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/proxy-scripts/sdk/evm/bindings"
)

type dataError struct {
	msg  string
	data any
}

func (e *dataError) Error() string  { return e.msg }
func (e *dataError) ErrorData() any { return e.data }

func encodeRevertString(t *testing.T, reason string) []byte {
	t.Helper()

	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)

	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	require.NoError(t, err)

	return append(common.FromHex("0x08c379a0"), packed...)
}

func TestBuildExecutionError(t *testing.T) {
	t.Parallel()

	parsed, err := bindings.SimpleTargetContractMetaData.GetAbi()
	require.NoError(t, err)

	account := common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	unauthorized, err := parsed.Errors["OwnableUnauthorizedAccount"].Inputs.Pack(account)
	require.NoError(t, err)
	unauthorized = append(parsed.Errors["OwnableUnauthorizedAccount"].ID.Bytes()[:4], unauthorized...)

	unknown := common.FromHex("0xdeadbeef0001")

	tests := []struct {
		name         string
		err          error
		wantMessage  string
		wantSelector string
	}{
		{
			name:         "Error(string) in rpc error data",
			err:          &dataError{msg: "execution reverted", data: hexutil.Encode(encodeRevertString(t, "not owner"))},
			wantMessage:  "pause reverted: not owner",
			wantSelector: "0x08c379a0",
		},
		{
			name:         "custom error with arguments",
			err:          &dataError{msg: "execution reverted", data: hexutil.Encode(unauthorized)},
			wantMessage:  fmt.Sprintf("pause reverted: OwnableUnauthorizedAccount(%v)", account),
			wantSelector: hexutil.Encode(parsed.Errors["OwnableUnauthorizedAccount"].ID.Bytes()[:4]),
		},
		{
			name:         "custom error embedded in the message",
			err:          errors.New("execution reverted: " + hexutil.Encode(parsed.Errors["ExpectedPause"].ID.Bytes()[:4])),
			wantMessage:  "pause reverted: ExpectedPause()",
			wantSelector: hexutil.Encode(parsed.Errors["ExpectedPause"].ID.Bytes()[:4]),
		},
		{
			name:         "unknown selector keeps the raw data",
			err:          &dataError{msg: "execution reverted", data: hexutil.Encode(unknown)},
			wantMessage:  "pause reverted: raw revert data 0xdeadbeef0001",
			wantSelector: "0xdeadbeef",
		},
		{
			name:        "hex in a non revert message is ignored",
			err:         errors.New("insufficient funds for gas * price + value: address 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"),
			wantMessage: "pause failed: insufficient funds for gas * price + value: address 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		},
		{
			name:        "non string error data",
			err:         &dataError{msg: "execution reverted", data: map[string]any{}},
			wantMessage: "pause failed: execution reverted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			execErr := BuildExecutionError(tt.err, "pause", nil, parsed)
			require.NotNil(t, execErr)

			assert.Equal(t, tt.wantMessage, execErr.Error())
			assert.Equal(t, tt.wantSelector, execErr.RawRevertReason.HexSelector())
			require.ErrorIs(t, execErr, tt.err)
		})
	}
}

func TestBuildExecutionError_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, BuildExecutionError(nil, "pause", nil, nil))
}

func TestCustomErrorData_Combined(t *testing.T) {
	t.Parallel()

	data := &CustomErrorData{Selector: [4]byte{0xde, 0xad, 0xbe, 0xef}, Data: []byte{0x01}}
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef, 0x01}, data.Combined())

	var empty *CustomErrorData
	assert.Nil(t, empty.Combined())
	assert.Empty(t, empty.HexSelector())
}
