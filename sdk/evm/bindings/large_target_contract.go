package bindings

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// LargeTargetContractMetaData contains all meta data concerning the LargeTargetContract contract.
// The configurables are fixed at deployment and read back through the proxy.
var LargeTargetContractMetaData = &bind.MetaData{
	ABI: "[{\"type\":\"function\",\"name\":\"getConfigurableB256\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"bytes32\",\"internalType\":\"bytes32\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"getConfigurableBool\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"bool\",\"internalType\":\"bool\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"getConfigurableByte\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint8\",\"internalType\":\"uint8\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"getConfigurableU64\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint64\",\"internalType\":\"uint64\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"getVersion\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"uint64\",\"internalType\":\"uint64\"}],\"stateMutability\":\"view\"},{\"type\":\"error\",\"name\":\"ConfigurableNotSet\",\"inputs\":[]}]",
}
